// File: doc.go
// Title: Package Documentation for config
// Description: Package config provides a dotted-key configuration accessor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package config loads configuration files and reads values by dotted key.
//
// Files are decoded by core/include, so TOML, YAML and JSON are accepted
// and the format follows the extension:
//
//	cfg, err := config.Load("app.toml")
//	host := cfg.GetString("db.host", "localhost")
//	port := cfg.GetInt("db.port", 5432)
//
// # Environment overrides
//
// Every key can be overridden by an environment variable. The variable
// name is the key upper-cased with dots replaced by underscores, optionally
// prefixed: with EnvPrefix "app", APP_DB_HOST overrides db.host.
// Environment values are always strings; the typed getters convert them.
//
// # Default instance
//
// SetDefault installs a configuration for the package-level Get, giving a
// one-call accessor usable anywhere:
//
//	config.SetDefault(cfg)
//	v := config.Get("feature.enabled")
//
// Get returns nil while no default is installed.
//
// # Watching
//
// Watch reloads the file after it changes on disk and calls the handler
// with the updated configuration. It stops when its context is cancelled.
package config
