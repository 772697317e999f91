// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/storage"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/internal/types"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package token -destination ./mock_storage.go github.com/wanderstack/brand-content-service/internal/storage BrandStorageInterface
//go:generate mockgen -build_flags=--mod=mod -package token -destination ./mock_issuer.go github.com/wanderstack/brand-content-service/pkg/authentication TokenIssuerInterface
//go:generate mockgen -build_flags=--mod=mod -package token -destination ./mock_token.go -source=./interfaces.go

var (
	adminIdentity  = authentication.Identity{ID: "admin-1", Admin: true}
	editorIdentity = authentication.Identity{ID: "editor-1"}
)

func newTestService(t *testing.T) (*Service, *MockTokenIssuerInterface, *MockBrandStorageInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockIssuer := NewMockTokenIssuerInterface(ctrl)
	mockBrands := NewMockBrandStorageInterface(ctrl)

	svc := NewService(mockIssuer, mockBrands, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return svc, mockIssuer, mockBrands
}

func TestIssueBrandTokenForMember(t *testing.T) {
	svc, mockIssuer, mockBrands := newTestService(t)

	expiresAt := time.Now().Add(time.Hour)
	mockBrands.EXPECT().GetBrandByID(gomock.Any(), "brand-1").
		Return(&types.Brand{ID: "brand-1", Enabled: true}, nil)
	mockBrands.EXPECT().GetMembership(gomock.Any(), "brand-1", "editor-1").
		Return(&types.Membership{BrandID: "brand-1", IdentityID: "editor-1", Role: types.RoleEditor}, nil)
	mockIssuer.EXPECT().IssueToken(gomock.Any(), "brand-1", "editor-1", []string{"pages:write"}).
		Return("signed-token", expiresAt, nil)

	result, err := svc.IssueBrandToken(context.Background(), editorIdentity, "brand-1", []string{"pages:write"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token != "signed-token" {
		t.Errorf("unexpected token %q", result.Token)
	}
	if !result.ExpiresAt.Equal(expiresAt) {
		t.Errorf("unexpected expiry %v", result.ExpiresAt)
	}
}

func TestIssueBrandTokenAdminSkipsMembershipCheck(t *testing.T) {
	svc, mockIssuer, mockBrands := newTestService(t)

	mockBrands.EXPECT().GetBrandByID(gomock.Any(), "brand-1").
		Return(&types.Brand{ID: "brand-1", Enabled: true}, nil)
	mockIssuer.EXPECT().IssueToken(gomock.Any(), "brand-1", "admin-1", gomock.Nil()).
		Return("signed-token", time.Now().Add(time.Hour), nil)

	if _, err := svc.IssueBrandToken(context.Background(), adminIdentity, "brand-1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIssueBrandTokenNonMemberForbidden(t *testing.T) {
	svc, _, mockBrands := newTestService(t)

	mockBrands.EXPECT().GetBrandByID(gomock.Any(), "brand-1").
		Return(&types.Brand{ID: "brand-1", Enabled: true}, nil)
	mockBrands.EXPECT().GetMembership(gomock.Any(), "brand-1", "editor-1").
		Return(nil, storage.ErrNotFound)

	_, err := svc.IssueBrandToken(context.Background(), editorIdentity, "brand-1", nil)
	if !errors.Is(err, httperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestIssueBrandTokenDisabledBrand(t *testing.T) {
	svc, _, mockBrands := newTestService(t)

	mockBrands.EXPECT().GetBrandByID(gomock.Any(), "brand-1").
		Return(&types.Brand{ID: "brand-1", Enabled: false}, nil)

	_, err := svc.IssueBrandToken(context.Background(), adminIdentity, "brand-1", nil)
	if !errors.Is(err, httperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestIssueBrandTokenUnknownBrandIsForbidden(t *testing.T) {
	svc, _, mockBrands := newTestService(t)

	// Same answer as a membership miss, so callers cannot probe which
	// brand ids exist.
	mockBrands.EXPECT().GetBrandByID(gomock.Any(), "missing").
		Return(nil, storage.ErrNotFound)

	_, err := svc.IssueBrandToken(context.Background(), adminIdentity, "missing", nil)
	if !errors.Is(err, httperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestIssueBrandTokenRejectsUnknownScope(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.IssueBrandToken(context.Background(), adminIdentity, "brand-1", []string{"admin:everything"})
	if !errors.Is(err, httperr.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestIssueBrandTokenRequiresBrand(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.IssueBrandToken(context.Background(), adminIdentity, "", nil)
	if !errors.Is(err, httperr.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
