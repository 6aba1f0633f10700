// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// Source types accepted by Load.
const (
	SourceEmbedded = "embedded"
	SourceCSV      = "csv"
	SourceJSON     = "json"
	SourceDuckDB   = "duckdb"
)

//go:embed data/catalog.csv
var defaultCatalogCSV []byte

// LoadOptions selects where the catalog is read from.
type LoadOptions struct {
	// Source is one of embedded, csv, json, duckdb. Empty means embedded.
	Source string

	// Path is the file to read (csv, json, duckdb).
	// For duckdb with an empty Table, Path is scanned directly by DuckDB
	// (CSV, Parquet, JSON); otherwise it is a DuckDB database file.
	Path string

	// Table is the DuckDB table holding the catalog.
	Table string
}

// Load reads and validates a catalog from the configured source.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func Load(ctx context.Context, opts LoadOptions) (*Catalog, error) {
	var (
		records []Item
		err     error
	)

	switch strings.ToLower(strings.TrimSpace(opts.Source)) {
	case "", SourceEmbedded:
		records, err = ParseCSV(bytes.NewReader(defaultCatalogCSV))
	case SourceCSV:
		records, err = readFile(opts.Path, ParseCSV)
	case SourceJSON:
		records, err = readFile(opts.Path, ParseJSON)
	case SourceDuckDB:
		records, err = LoadDuckDB(ctx, opts.Path, opts.Table)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, opts.Source)
	}
	if err != nil {
		return nil, err
	}

	return New(records)
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Load(context.Background(), LoadOptions{Source: SourceEmbedded})
}

// readFile opens path and hands it to parse.
func readFile(path string, parse func(io.Reader) ([]Item, error)) ([]Item, error) {
	if path == "" {
		return nil, errors.New("catalog path is required")
	}
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return records, nil
}

// ParseCSV reads records from CSV with a header row.
func ParseCSV(r io.Reader) ([]Item, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]Item, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		records = append(records, cols.item(row))
	}
	return records, nil
}

// jsonRecord accepts both "type" and "category" keys.
type jsonRecord struct {
	ID          interface{} `json:"id"`
	Title       string      `json:"title"`
	Type        string      `json:"type"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
}

// ParseJSON reads records from a JSON array of objects.
func ParseJSON(r io.Reader) ([]Item, error) {
	var raw []jsonRecord
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []Item{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	records := make([]Item, len(raw))
	for i, rec := range raw {
		category := rec.Category
		if category == "" {
			category = rec.Type
		}
		records[i] = Item{
			ID:          idString(rec.ID),
			Title:       rec.Title,
			Category:    category,
			Description: rec.Description,
		}
	}
	return records, nil
}

// idString renders a JSON id (string or number) as text.
func idString(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case json.Number:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}
