// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodmatch/internal/catalog"
	"github.com/tomtom215/moodmatch/internal/lexicon"
	"github.com/tomtom215/moodmatch/internal/models"
	"github.com/tomtom215/moodmatch/internal/recommend"
	"github.com/tomtom215/moodmatch/internal/recommend/algorithms"
	"github.com/tomtom215/moodmatch/internal/recommend/reranking"
)

// testEnv bundles a handler wired to the embedded catalog.
type testEnv struct {
	handler *Handler
	catalog *catalog.Catalog
	server  http.Handler
}

func newTestEnv(t *testing.T, mwCfg *ChiMiddlewareConfig) *testEnv {
	t.Helper()

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}

	engine, err := recommend.NewEngine(&recommend.Config{
		Mode:       recommend.ModeStrict,
		MaxResults: 3,
		Seed:       42,
	}, lexicon.Default(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	engine.SetRanker(algorithms.NewCosineRanker(algorithms.BuildVectorSpace(cat.Items())))
	engine.RegisterReranker(recommend.ModeStrict, reranking.NewCategoryDiversity())
	engine.RegisterReranker(recommend.ModeRaw, reranking.NewTopN())

	if mwCfg == nil {
		mwCfg = DefaultChiMiddlewareConfig()
		mwCfg.RateLimitDisabled = true
	}

	handler := NewHandler(engine, cat)
	handler.SetReady(true)
	return &testEnv{
		handler: handler,
		catalog: cat,
		server:  NewRouter(handler, mwCfg).SetupChi(),
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.APIResponse with a typed payload.
type envelope[T any] struct {
	Status   string           `json:"status"`
	Data     T                `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestRecommend_KnownMood(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/v1/recommendations",
		`{"mood":"chill","intent":"lofi beats","energy":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	resp := decode[recommend.Response](t, rec)
	if resp.Status != models.StatusSuccess {
		t.Errorf("Status = %q", resp.Status)
	}
	if len(resp.Data.Items) == 0 || resp.Data.Items[0].Item.Title != "Lo-Fi Study Beats" {
		t.Fatalf("first item = %+v, want Lo-Fi Study Beats", resp.Data.Items)
	}
	if resp.Data.Confidence <= 0 {
		t.Errorf("Confidence = %v, want > 0", resp.Data.Confidence)
	}
	if !resp.Data.Metadata.MoodResolved || resp.Data.Metadata.Energy != 3 {
		t.Errorf("Metadata = %+v", resp.Data.Metadata)
	}
	if resp.Metadata.RequestID == "" || resp.Metadata.RequestID != resp.Data.Metadata.RequestID {
		t.Errorf("request ids: envelope %q, engine %q", resp.Metadata.RequestID, resp.Data.Metadata.RequestID)
	}
	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("Cache-Control = %q", rec.Header().Get("Cache-Control"))
	}

	seen := make(map[string]bool)
	for _, item := range resp.Data.Items {
		key := reranking.CategoryKey(item.Item.Category)
		if seen[key] {
			t.Errorf("duplicate category %q in strict mode", item.Item.Category)
		}
		seen[key] = true
	}
}

func TestRecommend_DegradedInputs(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	tests := []struct {
		name         string
		body         string
		wantResolved bool
		wantKeywords []string
	}{
		{name: "empty body", body: "", wantKeywords: lexicon.DefaultFallback},
		{name: "empty object", body: `{}`, wantKeywords: lexicon.DefaultFallback},
		{name: "unknown mood", body: `{"mood":"curious","intent":"news"}`, wantKeywords: lexicon.DefaultFallback},
		{name: "known mood without intent", body: `{"mood":"happy"}`, wantResolved: true, wantKeywords: []string{"fun", "uplifting", "positive"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := env.do(t, http.MethodPost, "/api/v1/recommendations", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			resp := decode[recommend.Response](t, rec)
			if resp.Data.Metadata.MoodResolved != tt.wantResolved {
				t.Errorf("MoodResolved = %v, want %v", resp.Data.Metadata.MoodResolved, tt.wantResolved)
			}
			if strings.Join(resp.Data.KeywordsUsed, ",") != strings.Join(tt.wantKeywords, ",") {
				t.Errorf("KeywordsUsed = %v, want %v", resp.Data.KeywordsUsed, tt.wantKeywords)
			}
			if resp.Data.Items == nil {
				t.Error("Items is null, want a list")
			}
		})
	}
}

func TestRecommend_Chaos(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)
	lists := lexicon.Default().Lists()

	rec := env.do(t, http.MethodPost, "/api/v1/recommendations", `{"mood":"sad","chaos":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[recommend.Response](t, rec)

	got := strings.Join(resp.Data.KeywordsUsed, ",")
	found := false
	for _, list := range lists {
		if strings.Join(list, ",") == got {
			found = true
		}
	}
	if !found {
		t.Errorf("KeywordsUsed = %v is not a lexicon list", resp.Data.KeywordsUsed)
	}
	if !resp.Data.Metadata.Chaos {
		t.Error("Metadata.Chaos = false")
	}
}

func TestRecommend_Rejected(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	tests := []struct {
		name        string
		body        string
		contentType string
		wantStatus  int
		wantCode    string
	}{
		{name: "energy too high", body: `{"energy":11}`, wantStatus: http.StatusBadRequest, wantCode: models.ErrCodeValidation},
		{name: "negative energy", body: `{"energy":-2}`, wantStatus: http.StatusBadRequest, wantCode: models.ErrCodeValidation},
		{name: "intent too long", body: `{"intent":"` + strings.Repeat("x", 501) + `"}`, wantStatus: http.StatusBadRequest, wantCode: models.ErrCodeValidation},
		{name: "control characters", body: `{"mood":"ha\u0000ppy"}`, wantStatus: http.StatusBadRequest, wantCode: models.ErrCodeValidation},
		{name: "malformed json", body: `{"mood":`, wantStatus: http.StatusBadRequest, wantCode: models.ErrCodeInvalidJSON},
		{name: "trailing data", body: `{"mood":"happy"} {}`, wantStatus: http.StatusBadRequest, wantCode: models.ErrCodeInvalidJSON},
		{name: "wrong type", body: `{"energy":"high"}`, wantStatus: http.StatusBadRequest, wantCode: models.ErrCodeInvalidJSON},
		{name: "wrong content type", body: `{}`, contentType: "text/plain", wantStatus: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(tt.body))
			contentType := tt.contentType
			if contentType == "" {
				contentType = "application/json"
			}
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			env.server.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode == "" {
				return
			}
			resp := decode[json.RawMessage](t, rec)
			if resp.Status != models.StatusError || resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestRecommend_OversizedBody(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	body := `{"intent":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	rec := env.do(t, http.MethodPost, "/api/v1/recommendations", body)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413 (body %s)", rec.Code, rec.Body.String())
	}
	resp := decode[json.RawMessage](t, rec)
	if resp.Error == nil || resp.Error.Code != models.ErrCodeBodyTooLarge {
		t.Errorf("error = %+v, want code %s", resp.Error, models.ErrCodeBodyTooLarge)
	}
}

func TestRecommend_BodyAtLimitAccepted(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	prefix, suffix := `{"mood":"happy","intent":"`, `"}`
	body := prefix + strings.Repeat("x", maxBodyBytes-len(prefix)-len(suffix)) + suffix
	rec := env.do(t, http.MethodPost, "/api/v1/recommendations", body)
	if rec.Code == http.StatusRequestEntityTooLarge {
		t.Fatalf("status = 413 for a body of exactly %d bytes", len(body))
	}
}

func TestStats(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	env.do(t, http.MethodPost, "/api/v1/recommendations", `{"mood":"curious"}`)
	env.do(t, http.MethodPost, "/api/v1/recommendations", `{"mood":"happy","chaos":true}`)

	rec := env.do(t, http.MethodGet, "/api/v1/recommendations/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[recommend.Metrics](t, rec)
	if resp.Data.RequestCount != 2 || resp.Data.ChaosCount != 1 || resp.Data.UnknownMoodCount != 1 {
		t.Errorf("Metrics = %+v", resp.Data)
	}
}

func TestMoods(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/api/v1/moods", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[models.MoodList](t, rec)

	labels := lexicon.Default().Labels()
	if len(resp.Data.Moods) != len(labels) {
		t.Fatalf("got %d moods, want %d", len(resp.Data.Moods), len(labels))
	}
	for i, mood := range resp.Data.Moods {
		if mood.Label != labels[i] {
			t.Errorf("mood[%d] = %q, want %q", i, mood.Label, labels[i])
		}
		if len(mood.Keywords) == 0 {
			t.Errorf("mood %q has no keywords", mood.Label)
		}
	}
	if strings.Join(resp.Data.Fallback, ",") != strings.Join(lexicon.DefaultFallback, ",") {
		t.Errorf("Fallback = %v", resp.Data.Fallback)
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/moods", nil)
	req.Header.Set("If-None-Match", etag)
	cached := httptest.NewRecorder()
	env.server.ServeHTTP(cached, req)
	if cached.Code != http.StatusNotModified {
		t.Errorf("conditional GET status = %d, want 304", cached.Code)
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	tests := []struct {
		name  string
		path  string
		check func(t *testing.T, list models.CatalogList)
	}{
		{
			name: "all items",
			path: "/api/v1/catalog",
			check: func(t *testing.T, list models.CatalogList) {
				if list.Total != env.catalog.Len() || len(list.Items) != env.catalog.Len() {
					t.Errorf("Total = %d, items = %d, want %d", list.Total, len(list.Items), env.catalog.Len())
				}
				if len(list.Categories) == 0 {
					t.Error("no categories")
				}
			},
		},
		{
			name: "category filter is case-insensitive",
			path: "/api/v1/catalog?category=podcast",
			check: func(t *testing.T, list models.CatalogList) {
				if list.Total != 2 {
					t.Errorf("Total = %d, want 2", list.Total)
				}
				for _, item := range list.Items {
					if item.Category != "Podcast" {
						t.Errorf("item %q has category %q", item.Title, item.Category)
					}
				}
			},
		},
		{
			name: "unknown category",
			path: "/api/v1/catalog?category=opera",
			check: func(t *testing.T, list models.CatalogList) {
				if list.Total != 0 || list.Items == nil {
					t.Errorf("got %+v, want empty list", list)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := env.do(t, http.MethodGet, tt.path, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			tt.check(t, decode[models.CatalogList](t, rec).Data)
		})
	}
}

func TestFeedback(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)
	itemID := env.catalog.Items()[0].ID

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "like", body: `{"item_id":"` + itemID + `","vote":"like"}`, wantStatus: http.StatusAccepted},
		{name: "dislike", body: `{"item_id":"` + itemID + `","vote":"dislike"}`, wantStatus: http.StatusAccepted},
		{name: "unknown item", body: `{"item_id":"nope","vote":"like"}`, wantStatus: http.StatusNotFound, wantCode: models.ErrCodeNotFound},
		{name: "bad vote", body: `{"item_id":"` + itemID + `","vote":"meh"}`, wantStatus: http.StatusBadRequest, wantCode: models.ErrCodeValidation},
		{name: "missing item", body: `{"vote":"like"}`, wantStatus: http.StatusBadRequest, wantCode: models.ErrCodeValidation},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantCode: models.ErrCodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := env.do(t, http.MethodPost, "/api/v1/feedback", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode == "" {
				ack := decode[models.FeedbackAck](t, rec).Data
				if !ack.Accepted || ack.ItemID != itemID {
					t.Errorf("ack = %+v", ack)
				}
				return
			}
			resp := decode[json.RawMessage](t, rec)
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	live := env.do(t, http.MethodGet, "/api/v1/health/live", "")
	if live.Code != http.StatusOK {
		t.Errorf("live status = %d", live.Code)
	}

	ready := env.do(t, http.MethodGet, "/api/v1/health/ready", "")
	if ready.Code != http.StatusOK {
		t.Errorf("ready status = %d", ready.Code)
	}
	status := decode[models.HealthStatus](t, ready).Data
	if !status.Ready || status.CatalogItems != env.catalog.Len() {
		t.Errorf("HealthStatus = %+v", status)
	}

	env.handler.SetReady(false)
	notReady := env.do(t, http.MethodGet, "/api/v1/health/ready", "")
	if notReady.Code != http.StatusServiceUnavailable {
		t.Errorf("not ready status = %d, want 503", notReady.Code)
	}
	if live := env.do(t, http.MethodGet, "/api/v1/health/live", ""); live.Code != http.StatusOK {
		t.Errorf("live status while not ready = %d", live.Code)
	}
}
