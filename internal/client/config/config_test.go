package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"eventbook"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func writeJSONConfig(t *testing.T, jc jsonConfig) string {
	t.Helper()
	data, err := json.Marshal(jc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "https://localhost:8080/api", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.DataDir)
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with value",
			args:    []string{"-a", "https://x/api", "-z", "nope"},
			allowed: []string{"-a"},
			want:    []string{"-a", "https://x/api"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"-t=30", "-a=https://x/api"},
			allowed: []string{"-t"},
			want:    []string{"-t=30"},
		},
		{
			name:    "does not swallow a following flag as a value",
			args:    []string{"-a", "-t", "30"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-a", "-t", "30"},
		},
		{
			name:    "drops everything when nothing allowed",
			args:    []string{"-a", "x", "-t", "30"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, filterArgs(tc.args, tc.allowed))
		})
	}
}

func TestParseFlags_OverridesFields(t *testing.T) {
	setArgs(t, "-a", "https://flags.example/api", "-t", "30", "-d", "/tmp/eb")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "https://flags.example/api", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/eb", cfg.DataDir)
}

func TestParseFlags_AbsentFlagsKeepValues(t *testing.T) {
	setArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	cfg.BaseURL = "https://kept.example/api"
	parseFlags(&cfg)

	assert.Equal(t, "https://kept.example/api", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_OverridesFields(t *testing.T) {
	t.Setenv("EVENTBOOK_API_URL", "https://env.example/api")
	t.Setenv("EVENTBOOK_TIMEOUT", "20s")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://env.example/api", cfg.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
}

func TestParseJSON_AppliesFileNamedByFlag(t *testing.T) {
	path := writeJSONConfig(t, jsonConfig{
		BaseURL:        "https://json.example/api",
		RequestTimeout: "5s",
	})
	setArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "https://json.example/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.DataDir, "empty file fields leave the config untouched")
}

func TestParseJSON_NoFlagMeansNoSource(t *testing.T) {
	setArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "https://localhost:8080/api", cfg.BaseURL)
}

func TestLoadConfig_LaterSourcesWin(t *testing.T) {
	dataDir := t.TempDir()
	path := writeJSONConfig(t, jsonConfig{
		BaseURL:        "https://json.example/api",
		RequestTimeout: "5s",
		DataDir:        dataDir,
	})
	t.Setenv("EVENTBOOK_TIMEOUT", "20s")
	setArgs(t, "-c", path, "-a", "https://flags.example/api")

	cfg := LoadConfig()

	assert.Equal(t, "https://flags.example/api", cfg.BaseURL, "flag beats JSON")
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout, "env beats JSON")
	assert.Equal(t, dataDir, cfg.DataDir, "JSON beats default")
}

func TestResolveDataDir_CreatesExplicitDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := Config{DataDir: dir}

	got, err := cfg.ResolveDataDir()

	require.NoError(t, err)
	assert.Equal(t, dir, got)
	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
