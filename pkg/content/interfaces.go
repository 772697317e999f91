// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"encoding/json"

	"github.com/wanderstack/brand-content-service/internal/types"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

// SaveDraftInput carries one saveDraft call. ID is optional; without it the
// entity resolves by (brand_id, slug) and is created when absent.
type SaveDraftInput struct {
	BrandID   string
	ID        string
	Title     string
	Slug      string
	Content   json.RawMessage
	SortOrder *int64
}

// PublishResult is the outcome of a publish transition.
type PublishResult struct {
	Version int64
	URL     string
}

type ServiceInterface interface {
	List(ctx context.Context, family types.Family, brandID string) ([]*types.ContentEntity, error)
	SaveDraft(ctx context.Context, family types.Family, claims *authentication.BrandClaims, in SaveDraftInput) (*types.ContentEntity, error)
	Publish(ctx context.Context, family types.Family, claims *authentication.BrandClaims, id, bodyHTML string) (*PublishResult, error)
	Unpublish(ctx context.Context, family types.Family, claims *authentication.BrandClaims, id string) error
	Delete(ctx context.Context, family types.Family, claims *authentication.BrandClaims, id string) error
	Published(ctx context.Context, family types.Family, brandID string) ([]*types.ContentEntity, error)
}
