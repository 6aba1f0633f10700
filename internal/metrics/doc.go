// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and are
exposed by the API at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendation Metrics:
  - moodmatch_recommendations_total: Recommendations served (counter)
    Labels: mode (strict, raw), chaos (true, false)
  - moodmatch_recommendation_duration_seconds: Engine latency (histogram)
  - moodmatch_recommendation_confidence: Confidence percentage (histogram)
    Buckets: 0, 10, 20, ... 100
  - moodmatch_recommendation_fallbacks_total: Degraded requests (counter)
    Labels: reason (unknown_mood, empty_intent, zero_match)
  - moodmatch_feedback_total: Like/dislike votes (counter)
    Labels: vote

Catalog Metrics:
  - moodmatch_catalog_items: Items loaded at startup (gauge)
  - moodmatch_vocabulary_terms: Distinct indexed terms (gauge)

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

# Usage

	start := time.Now()
	resp := engine.Recommend(ctx, req)
	metrics.RecordRecommendation(metrics.Recommendation{
	    Mode:       resp.Metadata.Mode,
	    Chaos:      resp.Metadata.Chaos,
	    Duration:   time.Since(start),
	    Confidence: resp.Confidence,
	})

# Thread Safety

Prometheus collectors are safe for concurrent use.
*/
package metrics
