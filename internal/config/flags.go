package config

import (
	"flag"
	"os"

	"github.com/levietphu/campuspark/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-f string   path to the sqlite database file
//	-a string   default backend base URL
//	-l string   log level (debug, info, warn, error)
//	-o string   log file path (empty means stderr)
//
// os.Args is filtered down to the flags handled here so the JSON-config
// flags parsed elsewhere cause no interference.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-a", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.DefaultBaseURL, "a", cfg.DefaultBaseURL, "default backend base URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "o", cfg.LogFile, "log file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
