// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package catalog

import (
	"fmt"
	"strings"
)

// columnAliases maps accepted header names to item fields.
// "type" is the column name used by the original data files.
var columnAliases = map[string]string{
	"id":          "id",
	"title":       "title",
	"name":        "title",
	"type":        "category",
	"category":    "category",
	"description": "description",
}

// columnMap records the position of each item field in a row.
type columnMap struct {
	id, title, category, description int
}

// mapColumns resolves header names to field positions.
// The id column is optional; the other three are required.
func mapColumns(header []string) (columnMap, error) {
	cols := columnMap{id: -1, title: -1, category: -1, description: -1}

	for i, name := range header {
		field, ok := columnAliases[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))]
		if !ok {
			continue
		}
		switch field {
		case "id":
			if cols.id < 0 {
				cols.id = i
			}
		case "title":
			if cols.title < 0 {
				cols.title = i
			}
		case "category":
			if cols.category < 0 {
				cols.category = i
			}
		case "description":
			if cols.description < 0 {
				cols.description = i
			}
		}
	}

	switch {
	case cols.title < 0:
		return cols, fmt.Errorf("%w: title", ErrMissingColumn)
	case cols.category < 0:
		return cols, fmt.Errorf("%w: type or category", ErrMissingColumn)
	case cols.description < 0:
		return cols, fmt.Errorf("%w: description", ErrMissingColumn)
	}
	return cols, nil
}

// item builds an Item from a row using the resolved positions.
// Short rows yield empty fields, which New rejects.
func (m columnMap) item(row []string) Item {
	return Item{
		ID:          cell(row, m.id),
		Title:       cell(row, m.title),
		Category:    cell(row, m.category),
		Description: cell(row, m.description),
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
