// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package algorithms

import (
	"context"
	"sort"
	"strings"

	"github.com/tomtom215/moodmatch/internal/recommend"
)

// CosineRanker scores every item in a VectorSpace by cosine similarity to the
// projected query. It holds no mutable state.
type CosineRanker struct {
	space *VectorSpace
}

// NewCosineRanker creates a ranker over vs.
func NewCosineRanker(vs *VectorSpace) *CosineRanker {
	return &CosineRanker{space: vs}
}

// Name returns the ranker identifier.
func (r *CosineRanker) Name() string {
	return "cosine"
}

// Size returns the number of items ranked per query.
func (r *CosineRanker) Size() int {
	if r.space == nil {
		return 0
	}
	return r.space.Len()
}

// Rank projects query and ranks every item against it.
func (r *CosineRanker) Rank(ctx context.Context, query string) []recommend.ScoredItem {
	if r.space == nil {
		return nil
	}
	return r.RankVector(ctx, r.space.Project(query))
}

// RankVector ranks every item against an already projected query. Items are
// ordered by descending score; equal scores keep catalog order.
func (r *CosineRanker) RankVector(ctx context.Context, query Vector) []recommend.ScoredItem {
	if r.space == nil {
		return nil
	}

	n := r.space.Len()
	items := make([]recommend.ScoredItem, n)
	for i := 0; i < n; i++ {
		vec := r.space.Vector(i)
		items[i] = recommend.ScoredItem{
			Item:   r.space.Item(i),
			Score:  clamp01(Cosine(query, vec)),
			Reason: r.reason(query, vec),
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	return items
}

// reason names the query terms shared with the item vector.
func (r *CosineRanker) reason(query, item Vector) string {
	var matched []string
	for col := range query {
		if item[col] > 0 {
			matched = append(matched, r.space.Term(col))
		}
	}
	if len(matched) == 0 {
		return ""
	}
	sort.Strings(matched)
	return "matches " + strings.Join(matched, ", ")
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
