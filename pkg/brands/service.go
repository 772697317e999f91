// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package brands

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/storage"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/internal/types"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

// Brand slugs become path segments on the public sites, so they follow
// hostname-label rules rather than free-form text.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var validRoles = []string{types.RoleAdmin, types.RoleEditor, types.RoleAgent}

type Service struct {
	brands storage.BrandStorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	brands storage.BrandStorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		brands:  brands,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateBrand(ctx context.Context, identity authentication.Identity, in CreateBrandInput) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "brands.Service.CreateBrand")
	defer span.End()

	if err := s.requireAdmin(ctx, identity, "CreateBrand"); err != nil {
		return nil, err
	}
	if !slugPattern.MatchString(in.Slug) {
		return nil, fmt.Errorf("slug %q must be lowercase letters, digits and hyphens: %w", in.Slug, httperr.ErrValidation)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("name is required: %w", httperr.ErrValidation)
	}

	created, err := s.brands.CreateBrand(ctx, &types.Brand{
		Slug:    in.Slug,
		Name:    in.Name,
		Enabled: true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("brand slug %q already exists: %w", in.Slug, httperr.ErrValidation)
		}
		return nil, err
	}

	s.logger.Infof("brand created: id=%s slug=%s by=%s", created.ID, created.Slug, identity.ID)
	return created, nil
}

func (s *Service) GetBrand(ctx context.Context, id string) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "brands.Service.GetBrand")
	defer span.End()

	brand, err := s.brands.GetBrandByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, httperr.ErrNotFound
		}
		return nil, err
	}
	return brand, nil
}

// ListBrands returns every brand for admins and only the brands the caller
// holds a membership in otherwise.
func (s *Service) ListBrands(ctx context.Context, identity authentication.Identity) ([]*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "brands.Service.ListBrands")
	defer span.End()

	if identity.Admin {
		return s.brands.ListBrands(ctx)
	}
	return s.brands.ListBrandsByIdentityID(ctx, identity.ID)
}

func (s *Service) UpdateBrand(ctx context.Context, identity authentication.Identity, id string, in UpdateBrandInput) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "brands.Service.UpdateBrand")
	defer span.End()

	if err := s.requireAdmin(ctx, identity, "UpdateBrand"); err != nil {
		return nil, err
	}

	brand, err := s.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}

	var paths []string
	if in.Slug != nil {
		if !slugPattern.MatchString(*in.Slug) {
			return nil, fmt.Errorf("slug %q must be lowercase letters, digits and hyphens: %w", *in.Slug, httperr.ErrValidation)
		}
		brand.Slug = *in.Slug
		paths = append(paths, "slug")
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("name cannot be empty: %w", httperr.ErrValidation)
		}
		brand.Name = *in.Name
		paths = append(paths, "name")
	}
	if in.Enabled != nil {
		brand.Enabled = *in.Enabled
		paths = append(paths, "enabled")
	}

	if len(paths) == 0 {
		return brand, nil
	}

	if err := s.brands.UpdateBrand(ctx, brand, paths); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, httperr.ErrNotFound
		case errors.Is(err, storage.ErrDuplicateKey):
			return nil, fmt.Errorf("brand slug %q already exists: %w", brand.Slug, httperr.ErrValidation)
		}
		return nil, err
	}
	return brand, nil
}

func (s *Service) DeleteBrand(ctx context.Context, identity authentication.Identity, id string) error {
	ctx, span := s.tracer.Start(ctx, "brands.Service.DeleteBrand")
	defer span.End()

	if err := s.requireAdmin(ctx, identity, "DeleteBrand"); err != nil {
		return err
	}

	err := s.brands.DeleteBrand(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return httperr.ErrNotFound
	}
	return err
}

func (s *Service) AddMember(ctx context.Context, identity authentication.Identity, brandID, identityID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "brands.Service.AddMember")
	defer span.End()

	if err := s.requireBrandAdmin(ctx, identity, brandID, "AddMember"); err != nil {
		return "", err
	}
	if !slices.Contains(validRoles, role) {
		return "", fmt.Errorf("role %q is not one of %v: %w", role, validRoles, httperr.ErrValidation)
	}
	if identityID == "" {
		return "", fmt.Errorf("identity_id is required: %w", httperr.ErrValidation)
	}

	id, err := s.brands.AddMember(ctx, brandID, identityID, role)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateKey):
			return "", fmt.Errorf("identity %q is already a member: %w", identityID, httperr.ErrValidation)
		case errors.Is(err, storage.ErrForeignKeyViolation):
			return "", httperr.ErrNotFound
		}
		return "", err
	}
	return id, nil
}

func (s *Service) ListMembers(ctx context.Context, identity authentication.Identity, brandID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "brands.Service.ListMembers")
	defer span.End()

	if err := s.requireBrandAdmin(ctx, identity, brandID, "ListMembers"); err != nil {
		return nil, err
	}
	return s.brands.ListMembersByBrandID(ctx, brandID)
}

func (s *Service) requireAdmin(ctx context.Context, identity authentication.Identity, operation string) error {
	if identity.Admin {
		return nil
	}
	s.logger.Security().AuthzFailure(identity.ID, operation)
	return httperr.ErrForbidden
}

// requireBrandAdmin admits platform admins and identities holding the admin
// role on the brand itself.
func (s *Service) requireBrandAdmin(ctx context.Context, identity authentication.Identity, brandID, operation string) error {
	if identity.Admin {
		return nil
	}

	membership, err := s.brands.GetMembership(ctx, brandID, identity.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthzFailure(identity.ID, operation)
			return httperr.ErrForbidden
		}
		return err
	}
	if membership.Role != types.RoleAdmin {
		s.logger.Security().AuthzFailure(identity.ID, operation)
		return httperr.ErrForbidden
	}
	return nil
}
