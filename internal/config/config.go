// Package config assembles the client configuration from defaults, an
// optional .env file, environment variables, an optional JSON file, and
// command-line flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the grocery tracking client.
//
// Fields:
//   - ServerEndpointURL: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
//   - CredentialDBPath: path of the local sqlite credential database.
type Config struct {
	ServerEndpointURL string
	RequestTimeout    time.Duration
	CredentialDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 10 * time.Second
	c.CredentialDBPath = "credentials.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), JSON (if a
// config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
