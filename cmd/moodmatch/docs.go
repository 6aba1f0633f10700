// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

// General API information for swag. Regenerate the docs package with:
//
//	swag init -g cmd/moodmatch/docs.go -o docs
//
// @title Moodmatch API
// @version 1.0
// @description Mood-aware media recommendations ranked by TF-IDF similarity and diversified by category.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/moodmatch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Recommendation requests, engine statistics and feedback
//
// @tag.name Moods
// @tag.description Selectable mood labels
//
// @tag.name Catalog
// @tag.description Loaded catalog items
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
