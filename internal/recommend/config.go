// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package recommend

import (
	"fmt"
	"strings"
)

// Mode selects how the final items are picked from the ranked list.
type Mode int

const (
	// ModeStrict admits at most one item per category.
	ModeStrict Mode = iota
	// ModeRaw returns the top items by score.
	ModeRaw
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return ModeStrict, nil
	case "raw":
		return ModeRaw, nil
	default:
		return ModeStrict, fmt.Errorf("unknown recommendation mode %q (want strict or raw)", s)
	}
}

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Mode selects strict (category-diverse) or raw (top-N) selection.
	Mode Mode `json:"mode"`

	// MaxResults is the number of items returned per request.
	MaxResults int `json:"max_results"`

	// Seed seeds the random source used for chaos draws and intent
	// substitution. If zero, the source is seeded from the clock.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:       ModeStrict,
		MaxResults: 3,
	}
}

// maxResultsLimit bounds MaxResults.
const maxResultsLimit = 100

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Mode != ModeStrict && c.Mode != ModeRaw {
		return fmt.Errorf("mode must be strict or raw, got %d", c.Mode)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	if c.MaxResults > maxResultsLimit {
		return fmt.Errorf("max_results must be <= %d, got %d", maxResultsLimit, c.MaxResults)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
