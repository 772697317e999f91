// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package brands manages the brand registry and its memberships. Brands are
// the tenancy unit: every content row, token, and builder link is scoped to
// exactly one of them.
package brands

import (
	"context"

	"github.com/wanderstack/brand-content-service/internal/types"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

// CreateBrandInput carries the caller-supplied fields of a new brand.
type CreateBrandInput struct {
	Slug string
	Name string
}

// UpdateBrandInput uses pointers so callers can patch a subset of fields.
type UpdateBrandInput struct {
	Slug    *string
	Name    *string
	Enabled *bool
}

type ServiceInterface interface {
	CreateBrand(ctx context.Context, identity authentication.Identity, in CreateBrandInput) (*types.Brand, error)
	GetBrand(ctx context.Context, id string) (*types.Brand, error)
	ListBrands(ctx context.Context, identity authentication.Identity) ([]*types.Brand, error)
	UpdateBrand(ctx context.Context, identity authentication.Identity, id string, in UpdateBrandInput) (*types.Brand, error)
	DeleteBrand(ctx context.Context, identity authentication.Identity, id string) error
	AddMember(ctx context.Context, identity authentication.Identity, brandID, identityID, role string) (string, error)
	ListMembers(ctx context.Context, identity authentication.Identity, brandID string) ([]*types.Membership, error)
}
