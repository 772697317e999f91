// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/internal/types"
)

var _ TokenIssuerInterface = (*TokenIssuer)(nil)

// TokenIssuer mints short-lived HS256 brand tokens. Issuance is stateless:
// nothing is persisted and a token cannot be revoked before its expiry.
type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewTokenIssuer(
	secret string,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		lifetime: lifetime,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (i *TokenIssuer) IssueToken(ctx context.Context, brandID, subject string, scopes []string) (string, time.Time, error) {
	_, span := i.tracer.Start(ctx, "authentication.TokenIssuer.IssueToken")
	defer span.End()

	if brandID == "" {
		return "", time.Time{}, fmt.Errorf("brand_id is required to issue a token")
	}

	if len(scopes) == 0 {
		scopes = types.BuilderScopes
	}

	now := time.Now()
	expiresAt := now.Add(i.lifetime)

	claims := &BrandClaims{
		BrandID: brandID,
		Scopes:  scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign brand token: %w", err)
	}

	i.logger.Security().TokenIssued(subject, brandID)

	return token, expiresAt, nil
}
