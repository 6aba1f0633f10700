// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/moodmatch/internal/catalog"
	"github.com/tomtom215/moodmatch/internal/recommend"
)

// Config holds all application configuration.
//
// Config is immutable after LoadWithKoanf and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Lexicon   LexiconConfig   `koanf:"lexicon"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig selects where the catalog is loaded from.
type CatalogConfig struct {
	Source string `koanf:"source"` // embedded, csv, json, duckdb
	Path   string `koanf:"path"`
	Table  string `koanf:"table"` // duckdb only
}

// LoadOptions converts the section into catalog loader options.
func (c CatalogConfig) LoadOptions() catalog.LoadOptions {
	return catalog.LoadOptions{Source: c.Source, Path: c.Path, Table: c.Table}
}

// LexiconConfig points at an optional YAML mood lexicon.
type LexiconConfig struct {
	Path string `koanf:"path"` // empty uses the built-in table
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	Mode          string        `koanf:"mode"`
	MaxResults    int           `koanf:"max_results"`
	Seed          int64         `koanf:"seed"`
	StatsInterval time.Duration `koanf:"stats_interval"` // engine counter log interval
}

// EngineConfig converts the section into a recommend.Config.
func (r RecommendConfig) EngineConfig() (*recommend.Config, error) {
	mode, err := recommend.ParseMode(r.Mode)
	if err != nil {
		return nil, err
	}
	cfg := &recommend.Config{Mode: mode, MaxResults: r.MaxResults, Seed: r.Seed}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
