package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in
// the working directory is loaded first if present; it never overrides
// variables already set in the process environment.
//
// Recognized variables:
//
//	FRESHTRACK_SERVER_URL   — backend base URL
//	FRESHTRACK_TIMEOUT      — request timeout, time.ParseDuration format
//	FRESHTRACK_DB_PATH      — credential database path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FRESHTRACK_SERVER_URL"); v != "" {
		cfg.ServerEndpointURL = v
	}
	if v := os.Getenv("FRESHTRACK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("FRESHTRACK_DB_PATH"); v != "" {
		cfg.CredentialDBPath = v
	}
}
