// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for configuration loading with TOML
//              and YAML support.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-14
// Modified: 2025-09-14
//
// Change History:
// - 2025-09-14 v0.1.0: Initial implementation

// Package config loads configuration from TOML or YAML files with
// environment variable overrides and typed access.
//
// The format is detected from the file extension and can be forced
// through LoadOptions. Keys use dot notation to reach nested tables:
//
//	cfg, err := config.Load("mconsole.toml")
//	level := cfg.GetString("log.level", "info")
//	size  := cfg.GetInt("repl.history", 100)
//
// When an environment prefix is configured, a variable like
// MCONSOLE_LOG_LEVEL overrides the log.level key. Typed getters fall
// back to an optional default when the key is missing or not
// convertible.
package config
