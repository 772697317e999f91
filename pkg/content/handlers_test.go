// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/internal/types"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

const handlerTestSecret = "handler-test-signing-secret"

func newTestAPI(t *testing.T) (*MockServiceInterface, *chi.Mux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	mockService := NewMockServiceInterface(ctrl)
	verifier := authentication.NewTokenVerifier(handlerTestSecret, tracer, monitor, logger)
	tokenMdw := authentication.NewMiddleware(verifier, tracer, monitor, logger)

	api := NewAPI(mockService, tokenMdw, tracer, monitor, logger)
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mockService, mux
}

func mintToken(t *testing.T, brandID string) string {
	t.Helper()

	issuer := authentication.NewTokenIssuer(
		handlerTestSecret,
		time.Hour,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	token, _, err := issuer.IssueToken(context.Background(), brandID, "tester", nil)
	if err != nil {
		t.Fatalf("issuing test token: %v", err)
	}
	return token
}

func TestSaveDraftEndpoint(t *testing.T) {
	mockService, mux := newTestAPI(t)

	mockService.EXPECT().
		SaveDraft(gomock.Any(), types.FamilyPages, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ types.Family, claims *authentication.BrandClaims, in SaveDraftInput) (*types.ContentEntity, error) {
			if claims == nil || claims.BrandID != "brand-a" {
				t.Errorf("expected claims for brand-a, got %+v", claims)
			}
			if in.Slug != "home" {
				t.Errorf("expected slug home, got %q", in.Slug)
			}
			return &types.ContentEntity{ID: "page-1", Slug: "home", Version: 2}, nil
		})

	body := `{"brand_id":"brand-a","title":"Home","slug":"home","content":{"blocks":[]}}`
	req := httptest.NewRequest(http.MethodPost, "/pages-api/saveDraft", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "brand-a"))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID      string `json:"id"`
		Slug    string `json:"slug"`
		Version int64  `json:"version"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != "page-1" || resp.Version != 2 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestSaveDraftEndpointRejectsMissingToken(t *testing.T) {
	_, mux := newTestAPI(t)

	body := `{"brand_id":"brand-a","title":"Home","slug":"home"}`
	req := httptest.NewRequest(http.MethodPost, "/pages-api/saveDraft", strings.NewReader(body))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSaveDraftEndpointValidatesBody(t *testing.T) {
	_, mux := newTestAPI(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"brand_id":"brand-a","slug":"home"}`},
		{name: "missing slug", body: `{"brand_id":"brand-a","title":"Home"}`},
		{name: "missing brand", body: `{"title":"Home","slug":"home"}`},
		{name: "not json", body: `not-json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/pages-api/saveDraft", strings.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer "+mintToken(t, "brand-a"))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestPublishEndpoint(t *testing.T) {
	mockService, mux := newTestAPI(t)

	mockService.EXPECT().
		Publish(gomock.Any(), types.FamilyNews, gomock.Any(), "news-1", "<p>hi</p>").
		Return(&PublishResult{Version: 4, URL: "https://sites.example.com/acme/news/launch"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/news-api/news-1/publish", strings.NewReader(`{"body_html":"<p>hi</p>"}`))
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "brand-a"))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OK      bool   `json:"ok"`
		Version int64  `json:"version"`
		URL     string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.OK || resp.Version != 4 || resp.URL == "" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestPublishEndpointMapsServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{name: "forbidden", serviceErr: httperr.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "forbidden"},
		{name: "not found", serviceErr: httperr.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "validation", serviceErr: fmt.Errorf("body_html is required: %w", httperr.ErrValidation), wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
		{name: "internal", serviceErr: fmt.Errorf("connection refused"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, mux := newTestAPI(t)

			mockService.EXPECT().
				Publish(gomock.Any(), types.FamilyPages, gomock.Any(), "page-1", gomock.Any()).
				Return(nil, tt.serviceErr)

			req := httptest.NewRequest(http.MethodPost, "/pages-api/page-1/publish", strings.NewReader(`{"body_html":"<p>x</p>"}`))
			req.Header.Set("Authorization", "Bearer "+mintToken(t, "brand-a"))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			var resp struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, resp.Error.Code)
			}
			if tt.wantStatus == http.StatusInternalServerError && strings.Contains(resp.Error.Message, "connection refused") {
				t.Error("internal error details must not leak to the client")
			}
		})
	}
}

func TestUnpublishEndpoint(t *testing.T) {
	mockService, mux := newTestAPI(t)

	mockService.EXPECT().
		Unpublish(gomock.Any(), types.FamilyPages, gomock.Any(), "page-1").
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/pages-api/page-1/unpublish", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "brand-a"))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteEndpoint(t *testing.T) {
	mockService, mux := newTestAPI(t)

	mockService.EXPECT().
		Delete(gomock.Any(), types.FamilyTrips, gomock.Any(), "trip-1").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/trips-api/trip-1", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "brand-a"))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestListEndpointIsPublic(t *testing.T) {
	mockService, mux := newTestAPI(t)

	mockService.EXPECT().
		List(gomock.Any(), types.FamilyPages, "brand-a").
		Return([]*types.ContentEntity{{ID: "page-1", Slug: "home"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/pages-api/list?brand_id=brand-a", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Items []types.ContentEntity `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "page-1" {
		t.Errorf("unexpected items %+v", resp.Items)
	}
}

func TestPublishedEndpointLayoutDefaults(t *testing.T) {
	mockService, mux := newTestAPI(t)

	mockService.EXPECT().
		Published(gomock.Any(), types.FamilyHeaders, "brand-a").
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/headers-api/brand-a/published", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Items    []publishedItem `json:"items"`
		BodyHTML *string         `json:"body_html"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Errorf("expected empty items array, got %+v", resp.Items)
	}
	if resp.BodyHTML == nil || *resp.BodyHTML != "" {
		t.Errorf("expected empty body_html default, got %v", resp.BodyHTML)
	}
}

func TestPublishedEndpointNonLayoutOmitsBodyHTML(t *testing.T) {
	mockService, mux := newTestAPI(t)

	now := time.Now()
	mockService.EXPECT().
		Published(gomock.Any(), types.FamilyPages, "brand-a").
		Return([]*types.ContentEntity{
			{ID: "page-1", Slug: "home", Title: "Home", PublishedSnapshot: "<p>live</p>", PublishedAt: &now},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/pages-api/brand-a/published", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if _, ok := resp["body_html"]; ok {
		t.Error("non-layout families must not carry a top-level body_html")
	}
	var items []publishedItem
	if err := json.Unmarshal(resp["items"], &items); err != nil {
		t.Fatalf("decoding items: %v", err)
	}
	if len(items) != 1 || items[0].BodyHTML != "<p>live</p>" {
		t.Errorf("unexpected items %+v", items)
	}
}
