// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/tracing"
)

var _ TokenVerifierInterface = (*TokenVerifier)(nil)

// TokenVerifier validates brand tokens minted by the TokenIssuer with the
// same shared secret. Each failure mode surfaces as a distinct error kind
// so the dispatcher can report it stably.
type TokenVerifier struct {
	secret []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewTokenVerifier(
	secret string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *TokenVerifier {
	return &TokenVerifier{
		secret:  []byte(secret),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (v *TokenVerifier) VerifyToken(ctx context.Context, rawToken string) (*BrandClaims, error) {
	_, span := v.tracer.Start(ctx, "authentication.TokenVerifier.VerifyToken")
	defer span.End()

	claims := new(BrandClaims)
	token, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			v.logger.Security().AuthnFailure(claims.Subject, "token expired")
			return nil, httperr.ErrExpiredToken
		}
		v.logger.Debugf("token verification failed: %v", err)
		v.logger.Security().AuthnFailure(claims.Subject, "invalid token")
		return nil, httperr.ErrInvalidToken
	}

	if !token.Valid {
		v.logger.Security().AuthnFailure(claims.Subject, "invalid token")
		return nil, httperr.ErrInvalidToken
	}

	if claims.BrandID == "" {
		v.logger.Security().AuthnFailure(claims.Subject, "claims missing brand_id")
		return nil, httperr.ErrMalformedClaims
	}

	return claims, nil
}
