// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// BrandClaims is the payload of a brand access token. A token binds its
// holder to exactly one brand for its lifetime; the signature covers every
// field so claims are tamper-evident.
type BrandClaims struct {
	BrandID string   `json:"brand_id"`
	Scopes  []string `json:"scope"`
	jwt.RegisteredClaims
}

// HasScope reports whether the token carries the named capability.
func (c *BrandClaims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}
