package config

import (
	"fmt"
	"os"
	"time"
)

// Credential store backends.
const (
	StoreSQLite = "sqlite"
	StoreValkey = "valkey"
	StoreMemory = "memory"
)

// Config holds runtime settings for the unievents client.
//
// Fields:
//   - APIBaseURL: base address of the REST API, path prefix included.
//   - RequestTimeout: per-request HTTP timeout.
//   - StoreBackend: credential store backend (sqlite, valkey or memory).
//   - StorePath: SQLite database file for the sqlite backend.
//   - ValkeyAddr, ValkeyPrefix: connection and key namespace for the valkey backend.
//   - LogLevel, LogFormat: slog level (debug..error) and handler (text|json).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StoreBackend   string
	StorePath      string
	ValkeyAddr     string
	ValkeyPrefix   string
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000/api"
	c.RequestTimeout = 10 * time.Second
	c.StoreBackend = StoreSQLite
	c.StorePath = "unievents.db"
	c.ValkeyAddr = "127.0.0.1:6379"
	c.ValkeyPrefix = "unievents"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	switch c.StoreBackend {
	case StoreSQLite:
		if c.StorePath == "" {
			return fmt.Errorf("store path is empty")
		}
	case StoreValkey:
		if c.ValkeyAddr == "" {
			return fmt.Errorf("valkey address is empty")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	return nil
}

// LoadConfig constructs a Config from os.Args. See Load.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load applies defaults, then overlays values from a config file (if -c or
// -config is given) and command-line flags. Later sources take precedence
// over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
