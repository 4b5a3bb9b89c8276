// Package config holds runtime settings for the campuspark CLI shell.
// Values are resolved defaults -> JSON file -> command-line flags, with
// later sources taking precedence.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: sqlite file holding persisted client state.
//   - DefaultBaseURL: backend address used until one is configured in-app.
//   - LogLevel: slog level name (debug, info, warn, error).
//   - LogFile: when set, logs go to this rotating file instead of stderr.
type Config struct {
	DatabasePath   string
	DefaultBaseURL string
	LogLevel       string
	LogFile        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "campuspark.db"
	c.DefaultBaseURL = "http://192.168.137.213:8000"
	c.LogLevel = "info"
	c.LogFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
