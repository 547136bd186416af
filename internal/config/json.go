package config

import (
	"encoding/json"
	"os"

	"github.com/jbsipayung/mydiary-cli/internal/flagx"
	"github.com/jbsipayung/mydiary-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the splash delay either as a string like
// "3s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL string         `json:"server_base_url"`
	DatabaseDSN   string         `json:"database_dsn"`
	SplashDelay   timex.Duration `json:"splash_delay"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. Missing flag means no JSON is loaded.
// Read or unmarshal errors panic; only fields present in the file override
// the defaults.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SplashDelay.Duration != 0 {
		cfg.SplashDelay = jc.SplashDelay.Duration
	}
}
