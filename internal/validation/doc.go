// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

// Package validation validates API request bodies with go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct metadata
// and is safe for concurrent use. Field names in errors are taken from the
// struct's json tags so messages match what clients send.
//
// # Custom Tags
//
//   - printable: the string contains no control characters
//
// # Usage
//
//	type RecommendRequest struct {
//	    Mood   string `json:"mood" validate:"max=64,printable"`
//	    Energy int    `json:"energy" validate:"omitempty,min=1,max=10"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	}
package validation
