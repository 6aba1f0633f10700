// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/moodmatch/internal/catalog"
	"github.com/tomtom215/moodmatch/internal/lexicon"
)

// RandomSource draws uniform integers in [0, n).
type RandomSource = lexicon.RandomSource

// Energy bounds. Energy is advisory and never affects scoring.
const (
	MinEnergy     = 1
	MaxEnergy     = 10
	DefaultEnergy = 5
)

// ScoredItem represents a catalog item with its similarity to the query.
type ScoredItem struct {
	// Item is the catalog item.
	Item catalog.Item `json:"item"`

	// Score is the cosine similarity to the query (0-1, higher is better).
	Score float64 `json:"score"`

	// Reason names the query terms the item matched.
	Reason string `json:"reason,omitempty"`
}

// Request represents a recommendation request.
type Request struct {
	// Mood is the self-reported mood label. Unknown moods are allowed.
	Mood string `json:"mood"`

	// Intent is free text describing what the user is after. May be empty.
	Intent string `json:"intent"`

	// Energy is the user's energy level (1-10). Zero means unset.
	Energy int `json:"energy,omitempty"`

	// Chaos replaces the mood's keywords with a randomly drawn list.
	Chaos bool `json:"chaos,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// Response represents a recommendation response.
type Response struct {
	// Items is the ordered list of selected items.
	Items []ScoredItem `json:"items"`

	// Confidence is the best score over all ranked items as a percentage,
	// rounded to two decimals.
	Confidence float64 `json:"confidence"`

	// KeywordsUsed is the keyword list actually used, after chaos resolution.
	KeywordsUsed []string `json:"keywords_used"`

	// Query is the query string that was ranked.
	Query string `json:"query"`

	// Explanation is a human-readable account of the match.
	Explanation string `json:"explanation"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// Mood is the mood as requested.
	Mood string `json:"mood"`

	// ResolvedMood is the lexicon label whose keywords were used, empty for the fallback.
	ResolvedMood string `json:"resolved_mood,omitempty"`

	// Energy is the normalized energy level.
	Energy int `json:"energy"`

	// Chaos reports whether chaos mode was requested.
	Chaos bool `json:"chaos"`

	// Mode is the selection mode used.
	Mode string `json:"mode"`

	// MoodResolved reports whether the mood matched a lexicon label.
	MoodResolved bool `json:"mood_resolved"`

	// IntentSubstituted reports whether an empty intent was replaced by a keyword.
	IntentSubstituted bool `json:"intent_substituted"`

	// TotalCandidates is the number of catalog items ranked.
	TotalCandidates int `json:"total_candidates"`

	// LatencyMS is the total recommendation latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// Ranker scores every catalog item against a query.
type Ranker interface {
	// Name returns the ranker identifier (e.g., "cosine").
	Name() string

	// Rank returns all catalog items ordered by descending score. Items with
	// equal scores keep catalog order. Implementations must not mutate shared
	// state.
	Rank(ctx context.Context, query string) []ScoredItem

	// Size returns the number of items Rank considers.
	Size() int
}

// Reranker selects the final items from a ranked list.
type Reranker interface {
	// Name returns the reranker identifier (e.g., "category_diversity", "top_n").
	Name() string

	// Rerank returns up to k items from items, which are sorted by relevance.
	Rerank(ctx context.Context, items []ScoredItem, k int) []ScoredItem
}

// Metrics contains engine counters for observability.
type Metrics struct {
	// RequestCount is the total number of recommendation requests.
	RequestCount int64 `json:"request_count"`

	// ChaosCount is the number of requests served in chaos mode.
	ChaosCount int64 `json:"chaos_count"`

	// UnknownMoodCount is the number of requests that fell back to the default keywords.
	UnknownMoodCount int64 `json:"unknown_mood_count"`

	// EmptyIntentCount is the number of requests with a substituted intent.
	EmptyIntentCount int64 `json:"empty_intent_count"`

	// ZeroMatchCount is the number of requests where no item scored above zero.
	ZeroMatchCount int64 `json:"zero_match_count"`

	// AverageLatencyMS is the average recommendation latency.
	AverageLatencyMS float64 `json:"average_latency_ms"`
}

// NormalizeEnergy maps an unset energy to DefaultEnergy and clamps the rest to
// [MinEnergy, MaxEnergy].
func NormalizeEnergy(energy int) int {
	switch {
	case energy == 0:
		return DefaultEnergy
	case energy < MinEnergy:
		return MinEnergy
	case energy > MaxEnergy:
		return MaxEnergy
	default:
		return energy
	}
}
