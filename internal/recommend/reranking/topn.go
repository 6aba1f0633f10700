// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package reranking

import (
	"context"

	"github.com/tomtom215/moodmatch/internal/recommend"
)

// TopN keeps the first k items of the ranked list.
type TopN struct{}

// NewTopN creates a top-N reranker.
func NewTopN() *TopN {
	return &TopN{}
}

// Name returns the reranker identifier.
func (t *TopN) Name() string {
	return "top_n"
}

// Rerank returns a copy of the first k items.
func (t *TopN) Rerank(ctx context.Context, items []recommend.ScoredItem, k int) []recommend.ScoredItem {
	if len(items) == 0 || k <= 0 {
		return []recommend.ScoredItem{}
	}
	k = boundK(k, len(items))

	out := make([]recommend.ScoredItem, k)
	copy(out, items[:k])
	return out
}
