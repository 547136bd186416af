// Package config holds runtime settings for the mydiary CLI.
package config

import "time"

// Config fields:
//   - ServerBaseURL: base address of the diary service, e.g. http://127.0.0.1:2005.
//   - DatabaseDSN: path of the local sqlite database holding the session token.
//   - SplashDelay: how long the splash screen is shown before login.
type Config struct {
	ServerBaseURL string
	DatabaseDSN   string
	SplashDelay   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:2005"
	c.DatabaseDSN = "mydiary.db"
	c.SplashDelay = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
