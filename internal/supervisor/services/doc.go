// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

/*
Package services provides suture service wrappers for long-running components.

Each wrapper implements suture.Service (Serve(ctx) error) and fmt.Stringer so
the supervisor can start, restart and name it in log events.

  - HTTPServerService: runs an http.Server, shuts it down gracefully when the
    context is canceled and reports readiness through an optional hook
  - StatsService: logs recommendation engine counters on a fixed interval

Example:

	httpSvc := services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout)
	httpSvc.SetReadinessHook(handler.SetReady)
	tree.AddAPIService(httpSvc)

	tree.AddEngineService(services.NewStatsService(engine, cfg.Recommend.StatsInterval, logger))
*/
package services
