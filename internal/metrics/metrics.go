// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fallback reasons.
const (
	FallbackUnknownMood = "unknown_mood"
	FallbackEmptyIntent = "empty_intent"
	FallbackZeroMatch   = "zero_match"
)

var (
	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmatch_recommendations_total",
			Help: "Total number of recommendations served",
		},
		[]string{"mode", "chaos"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodmatch_recommendation_duration_seconds",
			Help:    "Recommendation engine latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	RecommendationConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodmatch_recommendation_confidence",
			Help:    "Confidence percentage of served recommendations",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	RecommendationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmatch_recommendation_fallbacks_total",
			Help: "Total number of requests served through a fallback path",
		},
		[]string{"reason"}, // unknown_mood, empty_intent, zero_match
	)

	FeedbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmatch_feedback_total",
			Help: "Total number of like/dislike votes received",
		},
		[]string{"vote"},
	)

	// Catalog Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodmatch_catalog_items",
			Help: "Number of catalog items loaded",
		},
	)

	VocabularyTerms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodmatch_vocabulary_terms",
			Help: "Number of distinct terms in the description index",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// Recommendation summarizes one served recommendation.
type Recommendation struct {
	Mode              string
	Chaos             bool
	Duration          time.Duration
	Confidence        float64
	MoodResolved      bool
	IntentSubstituted bool
}

// RecordRecommendation records a served recommendation and any fallbacks it took.
// A chaos draw always resolves, so an unresolved mood is only counted when
// chaos is off.
//
//nolint:gocritic // hugeParam: rec passed by value for immutability
func RecordRecommendation(rec Recommendation) {
	RecommendationsTotal.WithLabelValues(rec.Mode, strconv.FormatBool(rec.Chaos)).Inc()
	RecommendationDuration.Observe(rec.Duration.Seconds())
	RecommendationConfidence.Observe(rec.Confidence)

	if !rec.Chaos && !rec.MoodResolved {
		RecommendationFallbacks.WithLabelValues(FallbackUnknownMood).Inc()
	}
	if rec.IntentSubstituted {
		RecommendationFallbacks.WithLabelValues(FallbackEmptyIntent).Inc()
	}
	if rec.Confidence == 0 {
		RecommendationFallbacks.WithLabelValues(FallbackZeroMatch).Inc()
	}
}

// RecordFeedback records a like/dislike vote.
func RecordFeedback(vote string) {
	FeedbackTotal.WithLabelValues(vote).Inc()
}

// SetCatalogSize records the size of the loaded catalog and its index.
func SetCatalogSize(items, terms int) {
	CatalogItems.Set(float64(items))
	VocabularyTerms.Set(float64(terms))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
