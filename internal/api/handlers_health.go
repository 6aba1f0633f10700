// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moodmatch/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of readiness
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondJSON(w, http.StatusOK, success(r, models.HealthStatus{
		Status:        "alive",
		Ready:         h.IsReady(),
		CatalogItems:  h.catalog.Len(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, start))
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only once startup has completed and until shutdown begins,
// 503 otherwise.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Ready to serve"
// @Failure 503 {object} models.APIResponse "Starting or shutting down"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.IsReady() {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeNotReady, "Service is not ready", nil)
		return
	}

	respondJSON(w, http.StatusOK, success(r, models.HealthStatus{
		Status:        "ready",
		Ready:         true,
		CatalogItems:  h.catalog.Len(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, start))
}
