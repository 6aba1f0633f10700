// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/moodmatch/internal/logging"
	"github.com/tomtom215/moodmatch/internal/metrics"
	"github.com/tomtom215/moodmatch/internal/middleware"
	"github.com/tomtom215/moodmatch/internal/models"
	"github.com/tomtom215/moodmatch/internal/recommend"
)

// Recommend handles POST /api/v1/recommendations.
//
// The body is {mood, intent, energy, chaos}; every field is optional and an
// empty body is treated as an empty request. Unknown moods and empty intents
// are not errors: the response degrades to the fallback keywords.
//
// @Summary Get recommendations
// @Description Ranks the catalog against the mood keywords and intent and returns a diversified selection
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest false "Mood, intent, energy and chaos flag"
// @Success 200 {object} models.APIResponse{data=recommend.Response} "Recommendations"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 413 {object} models.APIResponse "Request body too large"
// @Router /recommendations [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body models.RecommendationRequest
	if err := decodeJSON(w, r, &body); err != nil && !errors.Is(err, ErrEmptyBody) {
		respondDecodeError(w, r, err)
		return
	}
	if apiErr := validateRequest(&body); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	resp := h.engine.Recommend(r.Context(), recommend.Request{
		Mood:      body.Mood,
		Intent:    body.Intent,
		Energy:    body.Energy,
		Chaos:     body.Chaos,
		RequestID: middleware.GetRequestID(r.Context()),
	})

	metrics.RecordRecommendation(metrics.Recommendation{
		Mode:              resp.Metadata.Mode,
		Chaos:             resp.Metadata.Chaos,
		Duration:          time.Since(start),
		Confidence:        resp.Confidence,
		MoodResolved:      resp.Metadata.MoodResolved,
		IntentSubstituted: resp.Metadata.IntentSubstituted,
	})

	logging.Ctx(r.Context()).Info().
		Str("mood", sanitizeLogValue(body.Mood)).
		Str("resolved_mood", resp.Metadata.ResolvedMood).
		Bool("chaos", body.Chaos).
		Int("items", len(resp.Items)).
		Float64("confidence", resp.Confidence).
		Msg("recommendations served")

	respondJSON(w, http.StatusOK, success(r, resp, start))
}

// Stats handles GET /api/v1/recommendations/stats and reports the engine
// counters.
//
// @Summary Engine statistics
// @Description Returns cumulative recommendation engine counters
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=recommend.Metrics} "Engine counters"
// @Router /recommendations/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondJSON(w, http.StatusOK, success(r, h.engine.GetMetrics(), start))
}
