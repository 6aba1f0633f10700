// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moodmatch/internal/logging"
	"github.com/tomtom215/moodmatch/internal/metrics"
	"github.com/tomtom215/moodmatch/internal/models"
)

// Feedback handles POST /api/v1/feedback. Votes are counted and logged but
// not stored and never influence ranking.
//
// @Summary Submit feedback
// @Description Records a like or dislike vote for a catalog item
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.FeedbackRequest true "Vote"
// @Success 202 {object} models.APIResponse{data=models.FeedbackAck} "Vote accepted"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 404 {object} models.APIResponse "Unknown item"
// @Router /feedback [post]
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body models.FeedbackRequest
	if err := decodeJSON(w, r, &body); err != nil {
		respondDecodeError(w, r, err)
		return
	}
	if apiErr := validateRequest(&body); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	item, ok := h.catalog.Get(body.ItemID)
	if !ok {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "Unknown catalog item", nil)
		return
	}

	metrics.RecordFeedback(body.Vote)
	logging.Ctx(r.Context()).Info().
		Str("item_id", item.ID).
		Str("title", item.Title).
		Str("vote", body.Vote).
		Msg("feedback received")

	respondJSON(w, http.StatusAccepted, success(r, models.FeedbackAck{
		ItemID:   item.ID,
		Vote:     body.Vote,
		Accepted: true,
	}, start))
}
