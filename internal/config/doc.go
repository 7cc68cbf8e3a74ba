// Package config handles configuration loading for gidas-admin.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults. The key decision the
// configuration drives is the process-wide service mode: when api.base_url is
// set every entity service talks to the REST API, otherwise collections live
// in the local SQLite-backed key-value store. The mode is fixed once at load
// time and never re-evaluated per call.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	api:
//	  base_url: "${GIDAS_API_URL}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Remote API:
//
//	api:
//	  base_url: "https://gidas.example.edu"  # empty => mock mode
//	  server_filter_personal: false          # ?tipo= filtering on the server
//
// Mock store:
//
//	store:
//	  path: "~/.local/share/gidas/gidas.db"
//
//	mock:
//	  latency: "300ms"   # artificial delay per mock operation
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Usage
//
//	cfg, err := config.Load("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if cfg.Mode() == config.ModeRemote { ... }
package config
