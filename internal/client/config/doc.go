// Package config loads runtime configuration for the unievents client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. YAML when the name
//     ends in .yaml/.yml, JSON otherwise.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # File schema
//
//	{
//	  "api_base_url": "http://127.0.0.1:3000/api",
//	  "request_timeout": "10s",
//	  "store_backend": "sqlite",
//	  "store_path": "unievents.db",
//	  "valkey_addr": "127.0.0.1:6379",
//	  "valkey_prefix": "unievents",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Environment variables are not consulted.
package config
