// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package recommend

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodmatch/internal/lexicon"
)

// Engine resolves moods, ranks the catalog and selects the final items.
// It is safe for concurrent use.
type Engine struct {
	// Configuration
	config *Config
	logger zerolog.Logger

	// Mood lexicon (immutable)
	lexicon *lexicon.Lexicon

	// Registered ranker and per-mode rerankers
	ranker    Ranker
	rerankers map[Mode]Reranker
	algMu     sync.RWMutex

	// Random source for chaos draws and intent substitution. Must be safe
	// for concurrent use.
	rng   RandomSource
	rngMu sync.RWMutex

	// Counters
	requestCount     atomic.Int64
	chaosCount       atomic.Int64
	unknownMoodCount atomic.Int64
	emptyIntentCount atomic.Int64
	zeroMatchCount   atomic.Int64
	totalLatencyUS   atomic.Int64
}

// NewEngine creates a new recommendation engine. A nil lexicon uses the
// built-in mood table.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, lex *lexicon.Lexicon, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if lex == nil {
		lex = lexicon.Default()
	}

	return &Engine{
		config:    cfg.Clone(),
		logger:    logger.With().Str("component", "recommend").Logger(),
		lexicon:   lex,
		rerankers: make(map[Mode]Reranker, 2),
		rng:       lexicon.NewLockedSource(cfg.Seed),
	}, nil
}

// SetRanker sets the ranker used to score the catalog.
func (e *Engine) SetRanker(r Ranker) {
	e.algMu.Lock()
	defer e.algMu.Unlock()

	e.ranker = r
	e.logger.Info().
		Str("ranker", r.Name()).
		Int("items", r.Size()).
		Msg("registered ranker")
}

// RegisterReranker sets the reranker used for mode, replacing any previous one.
func (e *Engine) RegisterReranker(mode Mode, rr Reranker) {
	e.algMu.Lock()
	defer e.algMu.Unlock()

	e.rerankers[mode] = rr
	e.logger.Info().
		Str("mode", mode.String()).
		Str("reranker", rr.Name()).
		Msg("registered reranker")
}

// SetRandomSource replaces the random source. The source must be safe for
// concurrent use if the engine is shared between goroutines. A nil source
// restores a seeded LockedSource.
func (e *Engine) SetRandomSource(rng RandomSource) {
	if rng == nil {
		rng = lexicon.NewLockedSource(e.config.Seed)
	}
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	e.rng = rng
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Lexicon returns the mood lexicon.
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lexicon
}

// Recommend produces recommendations for a mood and intent. It never fails:
// unknown moods, empty intents and empty catalogs all yield a well-formed
// Response.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) *Response {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	rng := e.randomSource()

	resolution := e.lexicon.Resolve(req.Mood, req.Chaos, rng)
	e.recordResolution(resolution, logger)

	query, substituted := BuildQuery(resolution.Keywords, req.Intent, rng)
	if substituted {
		e.emptyIntentCount.Add(1)
	}

	ranked := e.rank(ctx, query)
	confidence := ComputeConfidence(ranked)
	if confidence == 0 {
		e.zeroMatchCount.Add(1)
	}

	selected := e.selectItems(ctx, ranked)

	resp := &Response{
		Items:        selected,
		Confidence:   confidence,
		KeywordsUsed: resolution.Keywords,
		Query:        query,
		Explanation:  Explain(req, resolution),
		Metadata:     e.buildResponseMetadata(req, resolution, substituted, len(ranked), start),
	}
	e.totalLatencyUS.Add(time.Since(start).Microseconds())

	logger.Debug().
		Str("query", query).
		Int("candidates", len(ranked)).
		Int("returned", len(selected)).
		Float64("confidence", confidence).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp
}

// prepareRequest applies defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	req.Energy = NormalizeEnergy(req.Energy)
	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("mood", req.Mood).
		Int("energy", req.Energy).
		Bool("chaos", req.Chaos).
		Str("mode", e.config.Mode.String()).
		Logger()
}

func (e *Engine) randomSource() RandomSource {
	e.rngMu.RLock()
	defer e.rngMu.RUnlock()
	return e.rng
}

// recordResolution updates the resolution counters.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) recordResolution(res lexicon.Resolution, logger zerolog.Logger) {
	if res.Chaos && res.Mood != "" {
		e.chaosCount.Add(1)
		logger.Debug().Str("drawn_mood", res.Mood).Msg("chaos mode drew keyword list")
		return
	}
	if !res.Matched {
		e.unknownMoodCount.Add(1)
		logger.Debug().Strs("fallback", res.Keywords).Msg("unknown mood, using fallback keywords")
	}
}

// rank scores the catalog with the registered ranker.
func (e *Engine) rank(ctx context.Context, query string) []ScoredItem {
	e.algMu.RLock()
	ranker := e.ranker
	e.algMu.RUnlock()

	if ranker == nil {
		e.logger.Warn().Msg("no ranker registered")
		return nil
	}
	return ranker.Rank(ctx, query)
}

// selectItems applies the reranker registered for the configured mode. With
// no reranker registered the ranked list is truncated.
func (e *Engine) selectItems(ctx context.Context, ranked []ScoredItem) []ScoredItem {
	k := e.config.MaxResults

	e.algMu.RLock()
	rr := e.rerankers[e.config.Mode]
	e.algMu.RUnlock()

	var selected []ScoredItem
	if rr != nil {
		selected = rr.Rerank(ctx, ranked, k)
	} else {
		selected = ranked
	}

	if len(selected) > k {
		selected = selected[:k]
	}
	if selected == nil {
		selected = []ScoredItem{}
	}
	return selected
}

// buildResponseMetadata constructs response metadata.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponseMetadata(req Request, res lexicon.Resolution, substituted bool, candidates int, start time.Time) ResponseMetadata {
	return ResponseMetadata{
		RequestID:         req.RequestID,
		Mood:              req.Mood,
		ResolvedMood:      res.Mood,
		Energy:            req.Energy,
		Chaos:             req.Chaos,
		Mode:              e.config.Mode.String(),
		MoodResolved:      res.Matched,
		IntentSubstituted: substituted,
		TotalCandidates:   candidates,
		LatencyMS:         time.Since(start).Milliseconds(),
		Timestamp:         time.Now(),
	}
}

// GetMetrics returns a snapshot of the engine counters.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount:     e.requestCount.Load(),
		ChaosCount:       e.chaosCount.Load(),
		UnknownMoodCount: e.unknownMoodCount.Load(),
		EmptyIntentCount: e.emptyIntentCount.Load(),
		ZeroMatchCount:   e.zeroMatchCount.Load(),
	}
	if m.RequestCount > 0 {
		m.AverageLatencyMS = float64(e.totalLatencyUS.Load()) / float64(m.RequestCount) / 1000.0
	}
	return m
}

// BuildQuery joins the keywords and the intent into a query string. A blank
// intent is replaced by one keyword drawn uniformly from keywords; the second
// return value reports the substitution.
func BuildQuery(keywords []string, intent string, rng RandomSource) (string, bool) {
	base := strings.Join(keywords, " ")

	intent = strings.TrimSpace(intent)
	if intent != "" {
		return base + " " + intent, false
	}
	if len(keywords) == 0 {
		return base, false
	}
	return base + " " + keywords[rng.Intn(len(keywords))], true
}

// ComputeConfidence returns the best score in items as a percentage rounded
// to two decimals, or 0 for an empty list.
func ComputeConfidence(items []ScoredItem) float64 {
	var best float64
	for i := range items {
		if items[i].Score > best {
			best = items[i].Score
		}
	}
	return math.Round(best*100*100) / 100
}

// Explain renders the human-readable explanation for a response.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func Explain(req Request, res lexicon.Resolution) string {
	related := strings.Join(res.Keywords, ", ")
	mood := strings.TrimSpace(req.Mood)
	intent := strings.TrimSpace(req.Intent)

	var b strings.Builder
	switch {
	case res.Chaos && res.Mood != "":
		fmt.Fprintf(&b, "Chaos mode picked the %s mood for you", res.Mood)
	case mood != "":
		fmt.Fprintf(&b, "Because you feel %s", mood)
	default:
		b.WriteString("Because you didn't pick a mood")
	}
	if intent != "" {
		fmt.Fprintf(&b, " and mentioned %s", intent)
	}
	fmt.Fprintf(&b, ", we matched content related to: %s", related)
	return b.String()
}
