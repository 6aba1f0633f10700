// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

/*
Package api provides the HTTP REST API layer for Moodmatch.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for every endpoint
  - Response formatting: models.APIResponse envelope encoded with goccy/go-json
  - Validation: request bodies checked with go-playground/validator
  - Rate limiting: go-chi/httprate, per client IP
  - CORS: go-chi/cors
  - API docs: swag annotations on handlers, served by http-swagger

Endpoints:

	POST /api/v1/recommendations        {mood, intent, energy, chaos} -> recommend.Response
	GET  /api/v1/recommendations/stats  engine counters
	GET  /api/v1/moods                  mood labels, keywords and the fallback list
	GET  /api/v1/catalog[?category=]    catalog items
	POST /api/v1/feedback               {item_id, vote} -> 202, not stored
	GET  /api/v1/health/live            liveness
	GET  /api/v1/health/ready           readiness (503 until SetReady(true))
	GET  /metrics                       Prometheus exposition
	GET  /swagger/*                     OpenAPI document and UI (swaggo)

Error Handling:

Every error is returned in the standard envelope:

	{
	  "status": "error",
	  "error": {"code": "VALIDATION_ERROR", "message": "energy must be at most 10"},
	  "metadata": {"timestamp": "...", "request_id": "..."}
	}

An unknown mood or an empty intent is not an error; the recommendation is
served from the fallback keywords and the response metadata says so.

Usage Example:

	engineCfg, _ := cfg.Recommend.EngineConfig()
	engine, _ := recommend.NewEngine(engineCfg, lex, logging.Logger())
	handler := api.NewHandler(engine, cat)
	router := api.NewRouter(handler, api.NewChiMiddlewareConfig(cfg.Security))

	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
	handler.SetReady(true)
	srv.ListenAndServe()

Thread Safety:

Handlers are safe for concurrent use; the catalog and lexicon are immutable
and the engine synchronizes its own state.
*/
package api
