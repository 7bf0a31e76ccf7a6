// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

// Package config loads and validates application configuration using
// Koanf v2 with layered sources: built-in defaults, an optional YAML
// config file, and environment variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Data     DataConfig     `koanf:"data"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// APIConfig holds request-shaping settings for the API layer.
type APIConfig struct {
	// DefaultPageSize is used when a list request omits the size parameter.
	DefaultPageSize int `koanf:"default_page_size"`

	// MaxPageSize caps the size parameter on list requests.
	MaxPageSize int `koanf:"max_page_size"`
}

// DataConfig selects the catalog source.
//
// When CSVPath is set the catalog is loaded from that single file in bounded
// pages of LoadPageSize rows. Otherwise ChunkDir is scanned for pre-split
// movies_chunk_*.csv files.
type DataConfig struct {
	ChunkDir     string `koanf:"chunk_dir"`
	CSVPath      string `koanf:"csv_path"`
	LoadPageSize int    `koanf:"load_page_size"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be at least 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.Data.LoadPageSize < 1 {
		return fmt.Errorf("data.load_page_size must be at least 1, got %d", c.Data.LoadPageSize)
	}
	if c.Data.CSVPath == "" && c.Data.ChunkDir == "" {
		return fmt.Errorf("one of data.csv_path or data.chunk_dir must be set")
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_requests must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	return nil
}

// UseChunks reports whether the catalog loads from a chunk directory
// rather than a single CSV file.
func (c *Config) UseChunks() bool {
	return c.Data.CSVPath == ""
}
