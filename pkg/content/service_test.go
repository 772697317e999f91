// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/storage"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/internal/types"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package content -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package content -destination ./mock_content.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockContentStorageInterface, *MockBrandStorageInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockContent := NewMockContentStorageInterface(ctrl)
	mockBrands := NewMockBrandStorageInterface(ctrl)

	svc := NewService(
		mockContent,
		mockBrands,
		"https://sites.example.com",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return svc, mockContent, mockBrands
}

func claimsFor(brandID string, scopes ...string) *authentication.BrandClaims {
	if len(scopes) == 0 {
		scopes = types.BuilderScopes
	}
	c := &authentication.BrandClaims{BrandID: brandID, Scopes: scopes}
	c.Subject = "user-1"
	return c
}

func TestSaveDraftCreatesWhenSlugIsNew(t *testing.T) {
	svc, mockContent, _ := newTestService(t)

	in := SaveDraftInput{
		BrandID: "brand-a",
		Title:   "Home",
		Slug:    "home",
		Content: json.RawMessage(`{"blocks":[]}`),
	}

	mockContent.EXPECT().GetBySlug(gomock.Any(), types.FamilyPages, "brand-a", "home").
		Return(nil, storage.ErrNotFound)
	mockContent.EXPECT().Insert(gomock.Any(), types.FamilyPages, "brand-a", gomock.Any()).
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home", Version: 1, Status: types.StatusDraft}, nil)

	entity, err := svc.SaveDraft(context.Background(), types.FamilyPages, claimsFor("brand-a"), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.Version != 1 {
		t.Errorf("expected version 1, got %d", entity.Version)
	}
	if entity.Status != types.StatusDraft {
		t.Errorf("expected draft status, got %q", entity.Status)
	}
}

func TestSaveDraftUpsertsBySlug(t *testing.T) {
	// A second saveDraft without an id must update the existing row, not
	// create a duplicate.
	svc, mockContent, _ := newTestService(t)

	existing := &types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home", Version: 1}

	mockContent.EXPECT().GetBySlug(gomock.Any(), types.FamilyPages, "brand-a", "home").
		Return(existing, nil)
	mockContent.EXPECT().UpdateDraft(gomock.Any(), types.FamilyPages, "page-1", gomock.Any()).
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home", Version: 2}, nil)

	entity, err := svc.SaveDraft(context.Background(), types.FamilyPages, claimsFor("brand-a"), SaveDraftInput{
		BrandID: "brand-a", Title: "Home", Slug: "home",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.ID != "page-1" {
		t.Errorf("expected same row page-1, got %q", entity.ID)
	}
	if entity.Version != 2 {
		t.Errorf("expected version 2, got %d", entity.Version)
	}
}

func TestSaveDraftByIDChecksOwnership(t *testing.T) {
	svc, mockContent, _ := newTestService(t)

	// Row belongs to brand-a; token is bound to brand-b. The request body
	// also claims brand-b so the body check passes and the row check must
	// catch it.
	mockContent.EXPECT().GetByID(gomock.Any(), types.FamilyPages, "page-1").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a"}, nil)

	_, err := svc.SaveDraft(context.Background(), types.FamilyPages, claimsFor("brand-b"), SaveDraftInput{
		BrandID: "brand-b", ID: "page-1", Title: "t", Slug: "s",
	})
	if !errors.Is(err, httperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSaveDraftBrandMismatchIsForbiddenNotNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SaveDraft(context.Background(), types.FamilyPages, claimsFor("brand-b"), SaveDraftInput{
		BrandID: "brand-a", Title: "t", Slug: "s",
	})
	if !errors.Is(err, httperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if errors.Is(err, httperr.ErrNotFound) {
		t.Fatal("brand mismatch must not surface as not found")
	}
}

func TestSaveDraftRequiresScope(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SaveDraft(context.Background(), types.FamilyPages, claimsFor("brand-a", "menus:write"), SaveDraftInput{
		BrandID: "brand-a", Title: "t", Slug: "s",
	})
	if !errors.Is(err, httperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for missing scope, got %v", err)
	}
}

func TestSaveDraftInsertRaceFallsBackToUpdate(t *testing.T) {
	svc, mockContent, _ := newTestService(t)

	mockContent.EXPECT().GetBySlug(gomock.Any(), types.FamilyPages, "brand-a", "home").
		Return(nil, storage.ErrNotFound)
	mockContent.EXPECT().Insert(gomock.Any(), types.FamilyPages, "brand-a", gomock.Any()).
		Return(nil, storage.ErrDuplicateKey)
	mockContent.EXPECT().GetBySlug(gomock.Any(), types.FamilyPages, "brand-a", "home").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home", Version: 1}, nil)
	mockContent.EXPECT().UpdateDraft(gomock.Any(), types.FamilyPages, "page-1", gomock.Any()).
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home", Version: 2}, nil)

	entity, err := svc.SaveDraft(context.Background(), types.FamilyPages, claimsFor("brand-a"), SaveDraftInput{
		BrandID: "brand-a", Title: "Home", Slug: "home",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.Version != 2 {
		t.Errorf("expected version 2 after race fallback, got %d", entity.Version)
	}
}

func TestPublishHappyPath(t *testing.T) {
	svc, mockContent, mockBrands := newTestService(t)

	mockContent.EXPECT().GetByID(gomock.Any(), types.FamilyPages, "page-1").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home"}, nil)
	mockContent.EXPECT().Publish(gomock.Any(), types.FamilyPages, "page-1", "<p>hello</p>").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home", Version: 3, Status: types.StatusPublished}, nil)
	mockBrands.EXPECT().GetBrandByID(gomock.Any(), "brand-a").
		Return(&types.Brand{ID: "brand-a", Slug: "acme-travel"}, nil)

	result, err := svc.Publish(context.Background(), types.FamilyPages, claimsFor("brand-a"), "page-1", "<p>hello</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Version != 3 {
		t.Errorf("expected version 3, got %d", result.Version)
	}
	if result.URL != "https://sites.example.com/acme-travel/home" {
		t.Errorf("unexpected url %q", result.URL)
	}
}

func TestPublishSanitizesSnapshot(t *testing.T) {
	svc, mockContent, mockBrands := newTestService(t)

	var stored string
	mockContent.EXPECT().GetByID(gomock.Any(), types.FamilyPages, "page-1").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home"}, nil)
	mockContent.EXPECT().Publish(gomock.Any(), types.FamilyPages, "page-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ types.Family, _ string, snapshot string) (*types.ContentEntity, error) {
			stored = snapshot
			return &types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home", Version: 2}, nil
		})
	mockBrands.EXPECT().GetBrandByID(gomock.Any(), "brand-a").
		Return(&types.Brand{ID: "brand-a", Slug: "acme-travel"}, nil)

	_, err := svc.Publish(context.Background(), types.FamilyPages, claimsFor("brand-a"), "page-1",
		`<p>ok</p><script>alert("x")</script>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != "<p>ok</p>" {
		t.Errorf("expected script stripped, stored %q", stored)
	}
}

func TestPublishKeepsBuilderMarkupIntact(t *testing.T) {
	svc, mockContent, mockBrands := newTestService(t)

	// Rendered builder output leans on classes, inline styles, data
	// attributes and embeds. All of it must reach storage byte for byte.
	body := `<div class="hero" style="background:#fff" data-block="hero">` +
		`<h1>Trips</h1>` +
		`<a href="/trips" class="cta">Browse</a>` +
		`<iframe src="https://maps.example.com/embed" width="600" height="400" allowfullscreen=""></iframe>` +
		`</div>`

	var stored string
	mockContent.EXPECT().GetByID(gomock.Any(), types.FamilyPages, "page-1").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home"}, nil)
	mockContent.EXPECT().Publish(gomock.Any(), types.FamilyPages, "page-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ types.Family, _ string, snapshot string) (*types.ContentEntity, error) {
			stored = snapshot
			return &types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home", Version: 2}, nil
		})
	mockBrands.EXPECT().GetBrandByID(gomock.Any(), "brand-a").
		Return(&types.Brand{ID: "brand-a", Slug: "acme-travel"}, nil)

	_, err := svc.Publish(context.Background(), types.FamilyPages, claimsFor("brand-a"), "page-1", body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != body {
		t.Errorf("snapshot changed on publish:\n got %q\nwant %q", stored, body)
	}
}

func TestPublishStripsEventHandlers(t *testing.T) {
	svc, mockContent, mockBrands := newTestService(t)

	var stored string
	mockContent.EXPECT().GetByID(gomock.Any(), types.FamilyPages, "page-1").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home"}, nil)
	mockContent.EXPECT().Publish(gomock.Any(), types.FamilyPages, "page-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ types.Family, _ string, snapshot string) (*types.ContentEntity, error) {
			stored = snapshot
			return &types.ContentEntity{ID: "page-1", BrandID: "brand-a", Slug: "home", Version: 2}, nil
		})
	mockBrands.EXPECT().GetBrandByID(gomock.Any(), "brand-a").
		Return(&types.Brand{ID: "brand-a", Slug: "acme-travel"}, nil)

	_, err := svc.Publish(context.Background(), types.FamilyPages, claimsFor("brand-a"), "page-1",
		`<img src="https://cdn.example.com/a.png" onerror="alert(1)"/><a href="javascript:alert(1)">x</a>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stored, "onerror") || strings.Contains(stored, "javascript:") {
		t.Errorf("expected handler and scheme stripped, stored %q", stored)
	}
}

func TestPublishRequiresSnapshot(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Publish(context.Background(), types.FamilyPages, claimsFor("brand-a"), "page-1", "")
	if !errors.Is(err, httperr.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestPublishWrongTenantLeavesEntityUntouched(t *testing.T) {
	svc, mockContent, _ := newTestService(t)

	// Only the lookup runs; no Publish expectation means the state machine
	// never fires for a wrong-tenant caller.
	mockContent.EXPECT().GetByID(gomock.Any(), types.FamilyPages, "page-1").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a"}, nil)

	_, err := svc.Publish(context.Background(), types.FamilyPages, claimsFor("brand-b"), "page-1", "<p>x</p>")
	if !errors.Is(err, httperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPublishUnknownEntity(t *testing.T) {
	svc, mockContent, _ := newTestService(t)

	mockContent.EXPECT().GetByID(gomock.Any(), types.FamilyPages, "missing").
		Return(nil, storage.ErrNotFound)

	_, err := svc.Publish(context.Background(), types.FamilyPages, claimsFor("brand-a"), "missing", "<p>x</p>")
	if !errors.Is(err, httperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUnpublishKeepsSnapshot(t *testing.T) {
	svc, mockContent, _ := newTestService(t)

	mockContent.EXPECT().GetByID(gomock.Any(), types.FamilyPages, "page-1").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Status: types.StatusPublished, PublishedSnapshot: "<p>live</p>"}, nil)
	mockContent.EXPECT().Unpublish(gomock.Any(), types.FamilyPages, "page-1").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a", Status: types.StatusDraft, PublishedSnapshot: "<p>live</p>"}, nil)

	if err := svc.Unpublish(context.Background(), types.FamilyPages, claimsFor("brand-a"), "page-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteWrongTenant(t *testing.T) {
	svc, mockContent, _ := newTestService(t)

	mockContent.EXPECT().GetByID(gomock.Any(), types.FamilyPages, "page-1").
		Return(&types.ContentEntity{ID: "page-1", BrandID: "brand-a"}, nil)

	err := svc.Delete(context.Background(), types.FamilyPages, claimsFor("brand-b"), "page-1")
	if !errors.Is(err, httperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	svc, mockContent, _ := newTestService(t)

	mockContent.EXPECT().GetByID(gomock.Any(), types.FamilyPages, "missing").
		Return(nil, storage.ErrNotFound)

	err := svc.Delete(context.Background(), types.FamilyPages, claimsFor("brand-a"), "missing")
	if !errors.Is(err, httperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListRequiresBrand(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.List(context.Background(), types.FamilyPages, "")
	if !errors.Is(err, httperr.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
