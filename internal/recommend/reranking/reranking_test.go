// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package reranking

import (
	"context"
	"strings"
	"testing"

	"github.com/tomtom215/moodmatch/internal/catalog"
	"github.com/tomtom215/moodmatch/internal/recommend"
)

func makeItems(pairs ...string) []recommend.ScoredItem {
	items := make([]recommend.ScoredItem, 0, len(pairs)/2)
	score := 1.0
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, recommend.ScoredItem{
			Item:  catalog.Item{ID: pairs[i], Title: pairs[i], Category: pairs[i+1]},
			Score: score,
		})
		score -= 0.1
	}
	return items
}

func ids(items []recommend.ScoredItem) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Item.ID
	}
	return strings.Join(out, ",")
}

func TestCategoryDiversity_Rerank(t *testing.T) {
	tests := []struct {
		name  string
		items []recommend.ScoredItem
		k     int
		want  string
	}{
		{
			name:  "one per category",
			items: makeItems("a", "Movie", "b", "Movie", "c", "Music", "d", "Podcast", "e", "Book"),
			k:     3,
			want:  "a,c,d",
		},
		{
			name:  "case and whitespace insensitive",
			items: makeItems("a", "Movie", "b", " movie ", "c", "MUSIC", "d", "music"),
			k:     3,
			want:  "a,c",
		},
		{
			name:  "never pads",
			items: makeItems("a", "Movie", "b", "Movie", "c", "Movie"),
			k:     3,
			want:  "a",
		},
		{
			name:  "k larger than list",
			items: makeItems("a", "Movie", "b", "Music"),
			k:     10,
			want:  "a,b",
		},
		{
			name:  "empty",
			items: nil,
			k:     3,
			want:  "",
		},
		{
			name:  "zero k",
			items: makeItems("a", "Movie"),
			k:     0,
			want:  "",
		},
	}

	r := NewCategoryDiversity()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Rerank(context.Background(), tt.items, tt.k)
			if ids(got) != tt.want {
				t.Errorf("Rerank() = %s, want %s", ids(got), tt.want)
			}

			seen := map[string]bool{}
			for _, it := range got {
				key := CategoryKey(it.Item.Category)
				if seen[key] {
					t.Errorf("duplicate category %q", key)
				}
				seen[key] = true
			}
			if len(got) > tt.k && tt.k >= 0 {
				t.Errorf("len = %d exceeds k = %d", len(got), tt.k)
			}
		})
	}
}

func TestTopN_Rerank(t *testing.T) {
	items := makeItems("a", "Movie", "b", "Movie", "c", "Music", "d", "Movie")

	tests := []struct {
		k    int
		want string
	}{
		{3, "a,b,c"},
		{1, "a"},
		{10, "a,b,c,d"},
		{0, ""},
	}

	r := NewTopN()
	for _, tt := range tests {
		if got := ids(r.Rerank(context.Background(), items, tt.k)); got != tt.want {
			t.Errorf("Rerank(k=%d) = %s, want %s", tt.k, got, tt.want)
		}
	}

	out := r.Rerank(context.Background(), items, 2)
	out[0].Score = -1
	if items[0].Score == -1 {
		t.Error("TopN returned a view into the input slice")
	}
}

func TestRerankers_ImplementInterface(t *testing.T) {
	var _ recommend.Reranker = NewCategoryDiversity()
	var _ recommend.Reranker = NewTopN()

	if NewCategoryDiversity().Name() != "category_diversity" || NewTopN().Name() != "top_n" {
		t.Error("unexpected reranker names")
	}
}
