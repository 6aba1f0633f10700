// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodmatch/internal/logging"
)

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs the API server under the supervisor. Serve blocks in
// ListenAndServe until the context is canceled, then drains connections for
// at most the shutdown timeout.
//
//	svc := services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout)
//	svc.SetReadinessHook(handler.SetReady)
//	tree.AddAPIService(svc)
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	readiness       func(ready bool)
	logger          zerolog.Logger
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout uses 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		logger:          logging.WithComponent("http"),
	}
}

// SetReadinessHook registers fn to be called with true once the server is
// started and with false before it shuts down or after it fails. Must be
// called before Serve.
func (h *HTTPServerService) SetReadinessHook(fn func(ready bool)) {
	h.readiness = fn
}

func (h *HTTPServerService) setReady(ready bool) {
	if h.readiness != nil {
		h.readiness(ready)
	}
}

// Serve implements suture.Service. A listener failure is returned wrapped so
// the supervisor restarts the server; http.ErrServerClosed alone is a normal
// close and returns nil.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	h.setReady(true)
	h.logger.Info().Msg("HTTP server started")

	select {
	case err, failed := <-errCh:
		h.setReady(false)
		if failed {
			h.logger.Error().Err(err).Msg("HTTP server failed")
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// Probes must see not-ready before connections are drained.
		h.setReady(false)
		h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("HTTP server draining connections")

		start := time.Now()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		<-errCh

		h.logger.Info().Dur("drain", time.Since(start)).Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String names the service in supervisor events.
func (h *HTTPServerService) String() string {
	return "http-server"
}
