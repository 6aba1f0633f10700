// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package main

import (
	"context"
	"errors"

	"github.com/tomtom215/moodmatch/internal/logging"
	"github.com/tomtom215/moodmatch/internal/supervisor"
)

// runSupervisor serves tree until ctx is cancelled or the tree exits on its
// own, then waits for the tree to finish. stop is called once shutdown
// begins so a second SIGINT/SIGTERM terminates the process.
//
// ServeBackground delivers exactly one value and never closes its channel,
// so the result is received once on every path.
func runSupervisor(ctx context.Context, tree *supervisor.SupervisorTree, stop context.CancelFunc) error {
	errCh := tree.ServeBackground(ctx)

	var err error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		stop()
		err = <-errCh
	case err = <-errCh:
		stop()
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
