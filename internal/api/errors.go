// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package api

import "errors"

// Common API errors
var (
	// ErrEmptyBody indicates a request body was required but missing
	ErrEmptyBody = errors.New("request body is empty")

	// ErrTrailingData indicates the body held more than one JSON value
	ErrTrailingData = errors.New("request body must contain a single JSON object")
)
