// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package token mints brand-scoped builder tokens for dashboard callers.
// Entitlement is checked against the membership registry before any token
// leaves the service.
package token

import (
	"context"
	"time"

	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

// IssueResult carries a minted token and its expiry.
type IssueResult struct {
	Token     string
	ExpiresAt time.Time
}

type ServiceInterface interface {
	IssueBrandToken(ctx context.Context, identity authentication.Identity, brandID string, scopes []string) (*IssueResult, error)
}
