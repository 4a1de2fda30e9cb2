package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/unievents/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-s", "-d", "-v", "-l"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   API base address (e.g. http://127.0.0.1:3000/api)
//	-t int      request timeout in seconds
//	-s string   credential store backend: sqlite, valkey, memory
//	-d string   SQLite credential database path
//	-v string   valkey address host:port
//	-l string   log level
//
// Arguments not listed above are filtered out with flagx.FilterArgs so other
// components can own them.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("unievents", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base address")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "credential store backend")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "credential database path")
	fs.StringVar(&cfg.ValkeyAddr, "v", cfg.ValkeyAddr, "valkey address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
