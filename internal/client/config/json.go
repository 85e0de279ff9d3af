package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is a duration string ("15s", "1m") parsed with time.ParseDuration.
type jsonConfig struct {
	BaseURL        string `json:"base_url"`
	RequestTimeout string `json:"request_timeout"`
	DataDir        string `json:"data_dir"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// No flag means no JSON source. Empty fields in the file leave the config
// untouched. Read, unmarshal and duration errors panic; config loading
// happens before anything worth preserving is running.
func parseJSON(cfg *Config) {
	path := jsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
}
