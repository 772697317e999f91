// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Private custom types to avoid collisions
type claimsContextKey struct{}
type identityContextKey struct{}

// WithClaims returns a new context carrying verified brand token claims.
func WithClaims(ctx context.Context, claims *BrandClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext retrieves verified claims from the context.
func ClaimsFromContext(ctx context.Context) (*BrandClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*BrandClaims)
	return claims, ok
}

// Identity is a dashboard caller authenticated by the identity provider.
type Identity struct {
	ID    string
	Admin bool
}

// WithIdentity returns a new context carrying the dashboard identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext retrieves the dashboard identity from the context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}
