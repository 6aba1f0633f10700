// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

/*
Package models defines the API request and response structures.

Key Components:

  - APIResponse: Standardized response wrapper for every endpoint
  - APIError: Machine-readable error details
  - RecommendationRequest, FeedbackRequest: Validated request bodies
  - MoodList, CatalogList, FeedbackAck, HealthStatus: Response payloads

Request structs carry go-playground/validator tags and are checked with
validation.ValidateStruct before use. Domain types (catalog.Item,
recommend.Response) are embedded directly in payloads rather than copied.
*/
package models
