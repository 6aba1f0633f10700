// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

// Package reranking implements the selection step that turns a ranked list
// into the final recommendations.
//
// Reranking is applied after the ranker has scored the whole catalog:
//
//	Ranker -> ranked catalog -> Reranker -> final items
//
// # Available Rerankers
//
// CategoryDiversity (strict mode):
//   - Greedy single pass over the ranked list
//   - Admits an item only if its category has not been admitted yet
//   - Categories compare case-insensitively after trimming whitespace
//   - Never pads: fewer distinct categories means fewer items
//
// TopN (raw mode):
//   - First k items by score
//
// Both implement recommend.Reranker and never reorder the items they keep.
package reranking
