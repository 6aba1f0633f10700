// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

// Package catalog holds the fixed set of media items the recommender ranks.
//
// A Catalog is built once at startup from a tabular source with the columns
// title, type (or category), description and an optional id. Supported
// sources are the embedded default catalog, CSV files, JSON files and DuckDB
// (either a table in a database file or any file DuckDB can scan directly).
//
// # Item Identity
//
// Rows without an explicit id receive a synthetic id derived from the row
// position, title and category (UUIDv5). The same source always yields the
// same ids, and duplicate titles still get distinct ids. Explicit ids must be
// unique within a catalog.
//
// # Failure Semantics
//
// A record missing its title, category or description is fatal at load time.
// Loaders return an error wrapping ErrMalformedRecord (or ErrMissingColumn
// when the header lacks a required column) and never build a partial catalog.
//
// # Thread Safety
//
// A Catalog has no mutating methods. It is safe for concurrent readers.
package catalog
