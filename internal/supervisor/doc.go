// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

/*
Package supervisor provides process supervision for Moodmatch using suture v4.

# Overview

Long-running services are organized into a two-layer tree:

	RootSupervisor ("moodmatch")
	├── EngineSupervisor ("engine-layer")
	│   └── StatsService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff; each layer counts
failures independently. Canceling the context passed to Serve shuts the tree
down, waiting at most ShutdownTimeout per service.

Supervisor events (service panics, restarts, backoff) are logged through
sutureslog. Pass logging.NewSlogLogger("supervisor") so they reach the
zerolog output with the rest of the application logs.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped with error")
	}
*/
package supervisor
