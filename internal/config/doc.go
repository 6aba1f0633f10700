// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

/*
Package config provides configuration loading and validation for Moodmatch.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:
 1. Built-in defaults (struct provider)
 2. Optional YAML file: $CONFIG_PATH, config.yaml, config.yml,
    /etc/moodmatch/config.yaml, /etc/moodmatch/config.yml
 3. Environment variables

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

Catalog:
  - CATALOG_SOURCE: embedded, csv, json or duckdb (default: embedded)
  - CATALOG_PATH: File or DuckDB database path
  - CATALOG_TABLE: DuckDB table name (optional)

Lexicon:
  - LEXICON_PATH: Optional YAML mood lexicon

Recommendations:
  - RECOMMEND_MODE: strict or raw (default: strict)
  - RECOMMEND_MAX_RESULTS: Items per response (default: 3)
  - RECOMMEND_SEED: Random seed, 0 seeds from the clock (default: 0)
  - RECOMMEND_STATS_INTERVAL: How often engine counters are logged (default: 5m)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window (default: 100)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller info (default: false)

# Validation

LoadWithKoanf validates the merged configuration and returns an error naming
the offending variable. Callers treat that error as fatal.
*/
package config
