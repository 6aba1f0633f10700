// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

// Package algorithms implements the text model and ranker behind the
// recommendation engine.
//
// # Text Model
//
// BuildVectorSpace fits a TF-IDF model over catalog descriptions once at
// startup:
//
//   - Tokens: lower-cased runs of two or more word characters, English stop
//     words removed
//   - Weights: raw term count times smoothed IDF, ln((1+n)/(1+df)) + 1
//   - Each item vector is L2-normalized
//
// Queries are projected onto the fixed vocabulary with Project. Terms the
// catalog never used contribute nothing, and the model is never refitted.
//
// # Ranking
//
// CosineRanker implements recommend.Ranker. It scores every item by cosine
// similarity (0 against a zero vector) and sorts stably, so ties keep catalog
// order.
//
// # Usage Example
//
//	space := algorithms.BuildVectorSpace(cat.Items())
//	engine.SetRanker(algorithms.NewCosineRanker(space))
//
// # Thread Safety
//
// A VectorSpace is immutable after construction, and CosineRanker holds no
// mutable state, so both are safe for concurrent use without locks.
package algorithms
