package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/unievents/internal/flagx"
	"github.com/dmitrijs2005/unievents/internal/timex"
)

// FileConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "10s" and integer nanoseconds are accepted.
// Empty fields leave the current value untouched.
type FileConfig struct {
	APIBaseURL     string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	StoreBackend   string         `json:"store_backend" yaml:"store_backend"`
	StorePath      string         `json:"store_path" yaml:"store_path"`
	ValkeyAddr     string         `json:"valkey_addr" yaml:"valkey_addr"`
	ValkeyPrefix   string         `json:"valkey_prefix" yaml:"valkey_prefix"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	LogFormat      string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c/-config in args.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&cfg.APIBaseURL, fc.APIBaseURL)
	overlay(&cfg.StoreBackend, fc.StoreBackend)
	overlay(&cfg.StorePath, fc.StorePath)
	overlay(&cfg.ValkeyAddr, fc.ValkeyAddr)
	overlay(&cfg.ValkeyPrefix, fc.ValkeyPrefix)
	overlay(&cfg.LogLevel, fc.LogLevel)
	overlay(&cfg.LogFormat, fc.LogFormat)
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}
