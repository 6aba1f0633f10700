// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

/*
Package middleware provides HTTP middleware components for the API.

All middleware use the chi signature func(http.Handler) http.Handler so they
can be installed with r.Use.

Key Components:

  - RequestID: UUID-based request tracking, integrated with the logging context
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight instrumentation

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)         // Layer 1: Request tracking
	r.Use(chimiddleware.RealIP)         // Layer 2: Client address
	r.Use(chimiddleware.Recoverer)      // Layer 3: Panic recovery
	r.Use(middleware.AccessLog)         // Layer 4: Access logging
	r.Use(middleware.PrometheusMetrics) // Layer 5: Metrics

Metrics are labelled with the chi route pattern (for example
/api/v1/recommendations) rather than the raw path, which keeps label
cardinality bounded.

Thread Safety:

All middleware are safe for concurrent use.
*/
package middleware
