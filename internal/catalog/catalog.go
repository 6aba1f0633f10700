// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrMalformedRecord indicates a record lacks a required field or repeats an id.
	ErrMalformedRecord = errors.New("malformed catalog record")

	// ErrMissingColumn indicates the source header lacks a required column.
	ErrMissingColumn = errors.New("missing catalog column")

	// ErrUnsupportedSource indicates an unknown catalog source type.
	ErrUnsupportedSource = errors.New("unsupported catalog source")
)

// itemNamespace scopes synthetic item ids.
var itemNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/tomtom215/moodmatch/items"))

// Item is a single recommendable media title.
type Item struct {
	// ID is the stable item identifier (explicit or synthetic).
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Category is the media type (movie, music, podcast, ...).
	Category string `json:"category"`

	// Description is the free text indexed for similarity search.
	Description string `json:"description"`
}

// Catalog is an ordered, immutable collection of items.
type Catalog struct {
	items []Item
	index map[string]int
}

// New validates the records and builds a catalog. Blank ids are replaced by
// synthetic ids. The input slice is not retained.
//
//nolint:gocritic // rangeValCopy: Item is small
func New(records []Item) (*Catalog, error) {
	items := make([]Item, 0, len(records))
	index := make(map[string]int, len(records))

	for i, rec := range records {
		row := i + 1
		item := Item{
			ID:          strings.TrimSpace(rec.ID),
			Title:       strings.TrimSpace(rec.Title),
			Category:    strings.TrimSpace(rec.Category),
			Description: strings.TrimSpace(rec.Description),
		}

		if err := validateRecord(row, &item); err != nil {
			return nil, err
		}

		if item.ID == "" {
			item.ID = syntheticID(row, item.Title, item.Category)
		}

		if prev, dup := index[item.ID]; dup {
			return nil, fmt.Errorf("%w: row %d: id %q already used by row %d", ErrMalformedRecord, row, item.ID, prev+1)
		}

		index[item.ID] = len(items)
		items = append(items, item)
	}

	return &Catalog{items: items, index: index}, nil
}

// validateRecord checks the required fields of a single record.
func validateRecord(row int, item *Item) error {
	switch {
	case item.Title == "":
		return fmt.Errorf("%w: row %d: title is empty", ErrMalformedRecord, row)
	case item.Category == "":
		return fmt.Errorf("%w: row %d: category is empty", ErrMalformedRecord, row)
	case item.Description == "":
		return fmt.Errorf("%w: row %d: description is empty", ErrMalformedRecord, row)
	}
	return nil
}

// syntheticID derives a stable id from the record position and content.
func syntheticID(row int, title, category string) string {
	name := strconv.Itoa(row) + "\x00" + title + "\x00" + category
	return uuid.NewSHA1(itemNamespace, []byte(name)).String()
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return []Item{}
	}
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Get returns the item with the given id.
func (c *Catalog) Get(id string) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return []string{}
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range c.items {
		key := strings.ToLower(c.items[i].Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c.items[i].Category)
	}
	return out
}
