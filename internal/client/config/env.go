package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, without overriding
// variables that are already set.
//
// Recognized variables:
//
//	SERVER_BASE_URL   - backend API root
//	REQUEST_TIMEOUT   - Go duration string, e.g. "10s"
//	SESSION_DB_PATH   - local sqlite file path
//	LOG_LEVEL         - debug | info | warn | error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SERVER_BASE_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("SESSION_DB_PATH"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
