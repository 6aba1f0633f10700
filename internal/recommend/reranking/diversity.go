// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package reranking

import (
	"context"
	"strings"

	"github.com/tomtom215/moodmatch/internal/recommend"
)

// maxRerankSize limits slice allocations; k is also bounded by len(items).
const maxRerankSize = 10000

// CategoryDiversity keeps at most one item per category.
type CategoryDiversity struct{}

// NewCategoryDiversity creates a category diversity reranker.
func NewCategoryDiversity() *CategoryDiversity {
	return &CategoryDiversity{}
}

// Name returns the reranker identifier.
func (c *CategoryDiversity) Name() string {
	return "category_diversity"
}

// Rerank walks items in order and admits each item whose category is not yet
// represented, stopping at k items.
//
//nolint:gocritic // rangeValCopy: ScoredItem passed by value in range, acceptable for clarity
func (c *CategoryDiversity) Rerank(ctx context.Context, items []recommend.ScoredItem, k int) []recommend.ScoredItem {
	if len(items) == 0 || k <= 0 {
		return []recommend.ScoredItem{}
	}
	k = boundK(k, len(items))

	selected := make([]recommend.ScoredItem, 0, k)
	seen := make(map[string]struct{}, k)

	for _, item := range items {
		key := CategoryKey(item.Item.Category)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		selected = append(selected, item)

		if len(selected) == k {
			break
		}
	}

	return selected
}

// CategoryKey normalizes a category for comparison.
func CategoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func boundK(k, n int) int {
	if k > maxRerankSize {
		k = maxRerankSize
	}
	if k > n {
		k = n
	}
	return k
}
