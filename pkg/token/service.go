// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package token

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/storage"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/internal/types"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

type Service struct {
	issuer authentication.TokenIssuerInterface
	brands storage.BrandStorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	issuer authentication.TokenIssuerInterface,
	brands storage.BrandStorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		issuer:  issuer,
		brands:  brands,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// IssueBrandToken mints a builder token after checking the caller is
// entitled to the brand. Platform admins are entitled to every brand;
// everyone else needs a membership. Disabled brands issue no tokens.
func (s *Service) IssueBrandToken(ctx context.Context, identity authentication.Identity, brandID string, scopes []string) (*IssueResult, error) {
	ctx, span := s.tracer.Start(ctx, "token.Service.IssueBrandToken")
	defer span.End()

	if brandID == "" {
		return nil, fmt.Errorf("brand_id is required: %w", httperr.ErrValidation)
	}
	for _, scope := range scopes {
		if !slices.Contains(types.BuilderScopes, scope) {
			return nil, fmt.Errorf("unknown scope %q: %w", scope, httperr.ErrValidation)
		}
	}

	brand, err := s.brands.GetBrandByID(ctx, brandID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// An unknown brand answers the same as a brand the caller is
			// not a member of, so brand ids cannot be enumerated here.
			s.logger.Security().AuthzFailure(identity.ID, "IssueBrandToken")
			return nil, httperr.ErrForbidden
		}
		return nil, err
	}
	if !brand.Enabled {
		s.logger.Security().AuthzFailure(identity.ID, "IssueBrandToken:disabled-brand")
		return nil, httperr.ErrForbidden
	}

	if !identity.Admin {
		if _, err := s.brands.GetMembership(ctx, brandID, identity.ID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				s.logger.Security().AuthzFailure(identity.ID, "IssueBrandToken")
				return nil, httperr.ErrForbidden
			}
			return nil, err
		}
	}

	token, expiresAt, err := s.issuer.IssueToken(ctx, brandID, identity.ID, scopes)
	if err != nil {
		return nil, err
	}

	return &IssueResult{Token: token, ExpiresAt: expiresAt}, nil
}
