package config

import (
	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with EVENTBOOK_* environment variables. A .env
// file in the working directory is loaded first when present; a missing
// file is not an error. Variables that are unset leave the config
// untouched, preserving values from earlier sources.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
