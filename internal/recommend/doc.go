// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

// Package recommend turns a mood and a free-text intent into a short,
// diversified list of catalog matches.
//
// # Pipeline
//
// Each request flows through four stages:
//
//	Request -> lexicon.Resolve -> query -> Ranker.Rank -> Reranker.Rerank -> Response
//
// The mood is resolved to a keyword list (chaos mode draws a random list
// instead), the keywords and intent are joined into a query string, every
// catalog item is scored against the query by the registered Ranker, and the
// Reranker registered for the configured Mode picks the final items.
//
// # Modes
//
//   - ModeStrict: at most one item per category, greedy by score
//   - ModeRaw: plain top-N by score
//
// # Failure Semantics
//
// Recommend never returns an error. Unknown moods fall back to the lexicon's
// fallback keywords, an empty intent is replaced by one keyword drawn from the
// resolved list, and an empty catalog (or missing ranker) yields an empty
// Response with zero confidence.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), lex, logger)
//	engine.SetRanker(algorithms.NewCosineRanker(space))
//	engine.RegisterReranker(recommend.ModeStrict, reranking.NewCategoryDiversity())
//	engine.RegisterReranker(recommend.ModeRaw, reranking.NewTopN())
//
//	resp := engine.Recommend(ctx, recommend.Request{Mood: "happy", Intent: "comedy"})
//
// # Thread Safety
//
// The engine is safe for concurrent use. The catalog, lexicon and vector space
// are immutable; the only shared mutable state is the random source, which must
// itself be safe for concurrent use (see lexicon.LockedSource).
package recommend
