// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"

	"github.com/wanderstack/brand-content-service/internal/types"
)

type BrandStorageInterface interface {
	CreateBrand(ctx context.Context, b *types.Brand) (*types.Brand, error)
	GetBrandByID(ctx context.Context, id string) (*types.Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*types.Brand, error)
	ListBrands(ctx context.Context) ([]*types.Brand, error)
	UpdateBrand(ctx context.Context, b *types.Brand, paths []string) error
	DeleteBrand(ctx context.Context, id string) error
	AddMember(ctx context.Context, brandID, identityID, role string) (string, error)
	GetMembership(ctx context.Context, brandID, identityID string) (*types.Membership, error)
	ListMembersByBrandID(ctx context.Context, brandID string) ([]*types.Membership, error)
	ListBrandsByIdentityID(ctx context.Context, identityID string) ([]*types.Brand, error)
}

// DraftUpdate carries the mutable draft fields of a saveDraft call.
type DraftUpdate struct {
	Title        string
	Slug         string
	DraftContent json.RawMessage
	SortOrder    *int64
}

type ContentStorageInterface interface {
	ListByBrand(ctx context.Context, family types.Family, brandID string) ([]*types.ContentEntity, error)
	ListPublishedByBrand(ctx context.Context, family types.Family, brandID string) ([]*types.ContentEntity, error)
	GetByID(ctx context.Context, family types.Family, id string) (*types.ContentEntity, error)
	GetBySlug(ctx context.Context, family types.Family, brandID, slug string) (*types.ContentEntity, error)
	Insert(ctx context.Context, family types.Family, brandID string, upd DraftUpdate) (*types.ContentEntity, error)
	UpdateDraft(ctx context.Context, family types.Family, id string, upd DraftUpdate) (*types.ContentEntity, error)
	Publish(ctx context.Context, family types.Family, id, snapshot string) (*types.ContentEntity, error)
	Unpublish(ctx context.Context, family types.Family, id string) (*types.ContentEntity, error)
	Delete(ctx context.Context, family types.Family, id string) error
}
