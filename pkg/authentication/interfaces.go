// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"
)

type TokenIssuerInterface interface {
	// IssueToken mints a signed brand token for the given subject. The
	// entitlement of the subject to the brand must be checked by the caller
	// before issuing.
	IssueToken(ctx context.Context, brandID, subject string, scopes []string) (string, time.Time, error)
}

type TokenVerifierInterface interface {
	// VerifyToken parses and validates a raw token string, returning the
	// trusted claims or one of the httperr verification kinds.
	VerifyToken(ctx context.Context, rawToken string) (*BrandClaims, error)
}

type IdentityVerifierInterface interface {
	// VerifySession validates a dashboard session credential and returns
	// the subject it asserts.
	VerifySession(ctx context.Context, credential string) (string, error)
}
