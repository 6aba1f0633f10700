// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package api

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/moodmatch/internal/catalog"
	"github.com/tomtom215/moodmatch/internal/lexicon"
	"github.com/tomtom215/moodmatch/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Response and decoding helpers
//   - handlers_health.go: Liveness and readiness probes
//   - handlers_recommend.go: Recommendations and engine stats
//   - handlers_catalog.go: Mood list and catalog listing
//   - handlers_feedback.go: Like/dislike votes
type Handler struct {
	engine    *recommend.Engine
	catalog   *catalog.Catalog
	lexicon   *lexicon.Lexicon
	startTime time.Time
	ready     atomic.Bool
}

// NewHandler creates a new API handler. The mood lexicon is taken from the
// engine. The handler starts not ready; call SetReady once startup completes.
//
// Example:
//
//	handler := api.NewHandler(engine, cat)
//	router := api.NewRouter(handler, api.NewChiMiddlewareConfig(cfg.Security))
//	handler.SetReady(true)
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(engine *recommend.Engine, cat *catalog.Catalog) *Handler {
	return &Handler{
		engine:    engine,
		catalog:   cat,
		lexicon:   engine.Lexicon(),
		startTime: time.Now(),
	}
}

// SetReady marks the handler ready or not ready for traffic.
//
// Thread Safety: Safe for concurrent access.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady reports whether the handler accepts traffic.
func (h *Handler) IsReady() bool {
	return h.ready.Load()
}
