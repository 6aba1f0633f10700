// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // DuckDB driver
)

// duckdbMemoryDSN opens an in-memory database without touching the extension repository.
const duckdbMemoryDSN = ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false"

// LoadDuckDB reads catalog records through DuckDB.
//
// With a table name, path is opened read-only as a DuckDB database and the
// table is scanned. Without one, path is handed to DuckDB's replacement scan,
// so any CSV, Parquet or JSON file DuckDB understands can serve as a catalog.
func LoadDuckDB(ctx context.Context, path, table string) ([]Item, error) {
	if path == "" {
		return nil, errors.New("catalog path is required for duckdb source")
	}

	dsn := duckdbMemoryDSN
	query := "SELECT * FROM " + quoteLiteral(path)
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		// The sniffer cannot tell a header from data when every column is text.
		query = "SELECT * FROM read_csv(" + quoteLiteral(path) + ", header = true, all_varchar = true)"
	}
	if table != "" {
		dsn = path + "?access_mode=read_only"
		query = "SELECT * FROM " + quoteIdentifier(table)
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]Item, 0)
	values := make([]interface{}, len(header))
	ptrs := make([]interface{}, len(header))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = sqlText(v)
		}
		records = append(records, cols.item(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}

	return records, nil
}

// sqlText renders a scanned DuckDB value as text. NULL becomes empty.
func sqlText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
