// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/moodmatch/internal/catalog"
	"github.com/tomtom215/moodmatch/internal/models"
)

// Moods handles GET /api/v1/moods: the selectable mood labels in sorted
// order with their keywords, plus the fallback list used for anything else.
//
// @Summary List moods
// @Description Returns the selectable mood labels with their keywords and the fallback keyword list
// @Tags Moods
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.MoodList} "Mood labels"
// @Success 304 "Not modified"
// @Router /moods [get]
func (h *Handler) Moods(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	labels := h.lexicon.Labels()
	list := models.MoodList{
		Moods:    make([]models.MoodInfo, 0, len(labels)),
		Fallback: h.lexicon.Fallback(),
	}
	for _, label := range labels {
		keywords, _ := h.lexicon.Keywords(label)
		list.Moods = append(list.Moods, models.MoodInfo{Label: label, Keywords: keywords})
	}

	respondCacheableJSON(w, r, success(r, list, start), list)
}

// Catalog handles GET /api/v1/catalog. The optional category query parameter
// filters items case-insensitively.
//
// @Summary List catalog items
// @Description Returns the loaded catalog, optionally filtered by category
// @Tags Catalog
// @Produce json
// @Param category query string false "Case-insensitive category filter" example("movie")
// @Success 200 {object} models.APIResponse{data=models.CatalogList} "Catalog items"
// @Success 304 "Not modified"
// @Router /catalog [get]
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	items := h.catalog.Items()
	if category := r.URL.Query().Get("category"); category != "" {
		items = filterByCategory(items, category)
	}

	list := models.CatalogList{
		Items:      items,
		Categories: h.catalog.Categories(),
		Total:      len(items),
	}
	respondCacheableJSON(w, r, success(r, list, start), list)
}

func filterByCategory(items []catalog.Item, category string) []catalog.Item {
	category = strings.TrimSpace(category)
	out := make([]catalog.Item, 0, len(items))
	for i := range items {
		if strings.EqualFold(strings.TrimSpace(items[i].Category), category) {
			out = append(out, items[i])
		}
	}
	return out
}
