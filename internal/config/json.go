package config

import (
	"encoding/json"
	"os"

	"github.com/levietphu/campuspark/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	DatabasePath   string `json:"database_path"`
	DefaultBaseURL string `json:"default_base_url"`
	LogLevel       string `json:"log_level"`
	LogFile        string `json:"log_file"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. No flag, no JSON. Read or unmarshal errors panic;
// the caller may recover if desired.
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DefaultBaseURL != "" {
		cfg.DefaultBaseURL = jc.DefaultBaseURL
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
}
