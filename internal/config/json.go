package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/freshtrack/freshtrack/internal/flagx"
	"github.com/freshtrack/freshtrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It
// relies on timex.Duration so JSON can specify the timeout either as a
// string like "10s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointURL string         `json:"server_endpoint_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	CredentialDBPath  string         `json:"credential_db_path"`
}

// parseJson overlays Config with values loaded from the JSON file named
// by the -c or -config flag. With no such flag, nothing happens. Read
// or unmarshal errors panic; the config stage has no caller to report to.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointURL != "" {
		cfg.ServerEndpointURL = jc.ServerEndpointURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CredentialDBPath != "" {
		cfg.CredentialDBPath = jc.CredentialDBPath
	}
}
