// Package config handles configuration for the fleamarket application,
// including defaults, an optional JSON overlay, and command-line flags.
package config

// Config holds runtime settings.
//
// Fields:
//   - DataDir: directory holding the JSON artifacts.
//   - LogLevel: slog level name (debug, info, warn, error).
//   - AdminEmail / AdminSecret / AdminName / AdminContact: the account
//     seeded on first start when the user store is empty.
type Config struct {
	DataDir      string
	LogLevel     string
	AdminEmail   string
	AdminSecret  string
	AdminName    string
	AdminContact string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the default admin secret is insecure and should be overridden.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.LogLevel = "info"
	c.AdminEmail = "admin@fleamarket.local"
	c.AdminSecret = "admin123"
	c.AdminName = "Admin"
	c.AdminContact = "internal"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
