// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

// Package main is the entry point for the Moodmatch server.
//
// Moodmatch turns a mood label, an optional free-text intent and an energy
// level into a short list of catalog items, ranked by TF-IDF cosine similarity
// and diversified by category.
//
// # Startup Order
//
//  1. Configuration: defaults, optional YAML file, environment (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Catalog: embedded CSV, a CSV/JSON file or a DuckDB table
//  4. Lexicon: built-in mood table or a YAML file
//  5. Engine: vector space, cosine ranker and per-mode rerankers
//  6. Supervisor tree: stats reporter and HTTP server
//
// Catalog or lexicon errors abort startup; the server never answers requests
// with a partially loaded catalog.
//
// # Example Usage
//
//	export CATALOG_SOURCE=csv
//	export CATALOG_PATH=/data/catalog.csv
//	export RECOMMEND_MODE=strict
//	./moodmatch
//
//	curl -s -X POST localhost:8080/api/v1/recommendations \
//	  -H 'Content-Type: application/json' \
//	  -d '{"mood":"calm","intent":"something to fall asleep to","energy":2}'
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
// accepting connections, drains in-flight requests for up to
// SHUTDOWN_TIMEOUT and the stats reporter logs a final summary.
package main
