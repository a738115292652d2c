// Package config handles configuration for the Tastebook CLI, including
// defaults, environment overlay (.env aware), JSON overlay, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerBaseURL: root of the backend REST API, including the /api path.
//   - RequestTimeout: upper bound for any single backend call.
//   - SessionDBPath: path of the local sqlite file holding the session.
//   - LogLevel: "debug", "info", "warn" or "error".
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	SessionDBPath  string
	LogLevel       string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3001/api"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "tastebook.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file when present), an optional
// JSON file (-c/-config), and finally command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
