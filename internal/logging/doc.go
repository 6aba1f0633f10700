// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

// Package logging provides the process-wide zerolog logger for Moodmatch.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("source", "embedded").Int("items", n).Msg("catalog loaded")
//	logging.Ctx(ctx).Debug().Msg("recommendation served")
//
// # Context Propagation
//
// The HTTP layer stores the request ID and a request-scoped logger in the
// request context. Ctx(ctx) returns a logger carrying request_id and
// correlation_id fields when present.
//
// # slog Bridge
//
// SlogHandler implements log/slog.Handler on top of zerolog so libraries that
// expect *slog.Logger (the supervisor's sutureslog hook) write through the
// same pipeline.
//
// # Configuration
//
// Level, format and caller info come from the logging section of the
// application config (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("mood", m).Msg("resolved")  // Correct
//	logging.Info().Str("mood", m)                  // WRONG - never emitted
package logging
