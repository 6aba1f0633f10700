// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodmatch/internal/recommend"
)

// DefaultStatsInterval is used when no interval is configured.
const DefaultStatsInterval = 5 * time.Minute

// StatsSource exposes engine counters. Satisfied by *recommend.Engine.
type StatsSource interface {
	GetMetrics() recommend.Metrics
}

// StatsService periodically logs the recommendation engine counters.
// Intervals with no traffic are not logged.
type StatsService struct {
	source   StatsSource
	interval time.Duration
	logger   zerolog.Logger
	name     string

	last recommend.Metrics
}

// NewStatsService creates a stats reporter. A non-positive interval uses
// DefaultStatsInterval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsService(source StatsSource, interval time.Duration, logger zerolog.Logger) *StatsService {
	if interval <= 0 {
		interval = DefaultStatsInterval
	}
	return &StatsService{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("service", "stats").Logger(),
		name:     "stats-reporter",
	}
}

// Serve implements suture.Service.
func (s *StatsService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("stats reporter starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.report()
			s.logger.Info().Msg("stats reporter shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.report()
		}
	}
}

// report logs the counters accumulated since the previous report. It returns
// false when there was nothing to report.
func (s *StatsService) report() bool {
	current := s.source.GetMetrics()
	requests := current.RequestCount - s.last.RequestCount
	if requests <= 0 {
		return false
	}

	s.logger.Info().
		Int64("requests", requests).
		Int64("chaos", current.ChaosCount-s.last.ChaosCount).
		Int64("unknown_mood", current.UnknownMoodCount-s.last.UnknownMoodCount).
		Int64("empty_intent", current.EmptyIntentCount-s.last.EmptyIntentCount).
		Int64("zero_match", current.ZeroMatchCount-s.last.ZeroMatchCount).
		Int64("total_requests", current.RequestCount).
		Float64("avg_latency_ms", current.AverageLatencyMS).
		Msg("recommendation stats")

	s.last = current
	return true
}

// String returns the service name for logging.
func (s *StatsService) String() string {
	return s.name
}
