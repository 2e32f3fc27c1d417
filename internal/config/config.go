// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

// Package config loads and validates Kinolens configuration.
//
// Configuration is loaded via Koanf v2 with layered sources (highest wins):
//
//	Environment variables > config.yaml > built-in defaults
//
// The only required setting is the MongoDB connection string (MONGO_URI).
// A missing or empty URI is a fatal configuration error detected before any
// query runs.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for the Kinolens server.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds MongoDB connection settings.
type DatabaseConfig struct {
	// URI is the MongoDB connection string (required).
	URI string `koanf:"uri"`
	// Name is the database holding the movies/comments/users collections.
	Name string `koanf:"name"`
	// PingTimeout bounds connection establishment and the liveness check.
	// Aggregation queries themselves carry no timeout; a slow query only
	// delays its own panel.
	PingTimeout time.Duration `koanf:"ping_timeout"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	Timeout           time.Duration `koanf:"timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// APIConfig holds presentation-boundary defaults and bounds.
type APIConfig struct {
	// SearchLimitDefault is the search result limit when the client omits one.
	SearchLimitDefault int `koanf:"search_limit_default"`
	// SearchLimitMin/Max bound the client-supplied search limit.
	SearchLimitMin int `koanf:"search_limit_min"`
	SearchLimitMax int `koanf:"search_limit_max"`
	// DiscussedLimit is the size of the most-discussed ranking.
	DiscussedLimit int `koanf:"discussed_limit"`
	// GenreOptionsLimit caps the genre list returned by the filter-options
	// endpoint.
	GenreOptionsLimit int `koanf:"genre_options_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Validate checks the configuration for fatal errors. A missing connection
// string halts startup before any query is attempted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URI) == "" {
		return fmt.Errorf("database.uri is required: set MONGO_URI to the MongoDB connection string")
	}
	if !strings.HasPrefix(c.Database.URI, "mongodb://") && !strings.HasPrefix(c.Database.URI, "mongodb+srv://") {
		return fmt.Errorf("database.uri must be a mongodb:// or mongodb+srv:// connection string")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name must not be empty")
	}
	if c.Database.PingTimeout <= 0 {
		return fmt.Errorf("database.ping_timeout must be positive, got %s", c.Database.PingTimeout)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1,65535], got %d", c.Server.Port)
	}
	if c.API.SearchLimitMin < 1 || c.API.SearchLimitMax < c.API.SearchLimitMin {
		return fmt.Errorf("api search limit bounds invalid: min=%d max=%d",
			c.API.SearchLimitMin, c.API.SearchLimitMax)
	}
	if c.API.SearchLimitDefault < c.API.SearchLimitMin || c.API.SearchLimitDefault > c.API.SearchLimitMax {
		return fmt.Errorf("api.search_limit_default %d outside [%d,%d]",
			c.API.SearchLimitDefault, c.API.SearchLimitMin, c.API.SearchLimitMax)
	}
	if c.API.DiscussedLimit < 1 {
		return fmt.Errorf("api.discussed_limit must be positive, got %d", c.API.DiscussedLimit)
	}
	if c.API.GenreOptionsLimit < 1 {
		return fmt.Errorf("api.genre_options_limit must be positive, got %d", c.API.GenreOptionsLimit)
	}
	return nil
}
