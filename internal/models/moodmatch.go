// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package models

import (
	"github.com/tomtom215/moodmatch/internal/catalog"
)

// Feedback votes.
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// RecommendationRequest is the body of POST /api/v1/recommendations.
// Energy 0 means unset.
type RecommendationRequest struct {
	Mood   string `json:"mood" validate:"max=64,printable"`
	Intent string `json:"intent" validate:"max=500,printable"`
	Energy int    `json:"energy" validate:"min=0,max=10"`
	Chaos  bool   `json:"chaos"`
}

// FeedbackRequest is the body of POST /api/v1/feedback.
type FeedbackRequest struct {
	ItemID string `json:"item_id" validate:"required,max=128,printable"`
	Vote   string `json:"vote" validate:"required,oneof=like dislike"`
}

// FeedbackAck acknowledges a vote. Votes are not stored.
type FeedbackAck struct {
	ItemID   string `json:"item_id"`
	Vote     string `json:"vote"`
	Accepted bool   `json:"accepted"`
}

// MoodInfo describes one lexicon label.
type MoodInfo struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// MoodList is the payload of GET /api/v1/moods.
type MoodList struct {
	Moods    []MoodInfo `json:"moods"`
	Fallback []string   `json:"fallback"`
}

// CatalogList is the payload of GET /api/v1/catalog.
type CatalogList struct {
	Items      []catalog.Item `json:"items"`
	Categories []string       `json:"categories"`
	Total      int            `json:"total"`
}

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	Ready         bool    `json:"ready"`
	CatalogItems  int     `json:"catalog_items"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
