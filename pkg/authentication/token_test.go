// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/internal/types"
)

const testSecret = "test-signing-secret"

func newIssuer(lifetime time.Duration) *TokenIssuer {
	return NewTokenIssuer(testSecret, lifetime, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func newVerifier(secret string) *TokenVerifier {
	return NewTokenVerifier(secret, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	issuer := newIssuer(time.Hour)
	verifier := newVerifier(testSecret)

	token, expiresAt, err := issuer.IssueToken(context.Background(), "brand-1", "user-1", []string{"pages:write"})
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}
	if time.Until(expiresAt) > time.Hour || time.Until(expiresAt) < 59*time.Minute {
		t.Errorf("unexpected expiry %v", expiresAt)
	}

	claims, err := verifier.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error verifying token: %v", err)
	}
	if claims.BrandID != "brand-1" {
		t.Errorf("expected brand-1, got %q", claims.BrandID)
	}
	if claims.Subject != "user-1" {
		t.Errorf("expected user-1, got %q", claims.Subject)
	}
	if !claims.HasScope("pages:write") {
		t.Error("expected pages:write scope")
	}
	if claims.HasScope("menus:write") {
		t.Error("unexpected menus:write scope")
	}
}

func TestIssueTokenDefaultScopes(t *testing.T) {
	issuer := newIssuer(time.Hour)
	verifier := newVerifier(testSecret)

	token, _, err := issuer.IssueToken(context.Background(), "brand-1", "user-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := verifier.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, scope := range types.BuilderScopes {
		if !claims.HasScope(scope) {
			t.Errorf("expected default scope %q", scope)
		}
	}
}

func TestIssueTokenRequiresBrand(t *testing.T) {
	issuer := newIssuer(time.Hour)

	if _, _, err := issuer.IssueToken(context.Background(), "", "user-1", nil); err == nil {
		t.Fatal("expected error for empty brand_id")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := newIssuer(-time.Minute)
	verifier := newVerifier(testSecret)

	token, _, err := issuer.IssueToken(context.Background(), "brand-1", "user-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = verifier.VerifyToken(context.Background(), token)
	if !errors.Is(err, httperr.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyForgedToken(t *testing.T) {
	forger := NewTokenIssuer("other-secret", time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	verifier := newVerifier(testSecret)

	token, _, err := forger.IssueToken(context.Background(), "brand-1", "user-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = verifier.VerifyToken(context.Background(), token)
	if !errors.Is(err, httperr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	verifier := newVerifier(testSecret)

	_, err := verifier.VerifyToken(context.Background(), "not-a-token")
	if !errors.Is(err, httperr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsAlgorithmMismatch(t *testing.T) {
	// A token signed with "none" must never pass, even with a valid shape.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &BrandClaims{
		BrandID: "brand-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verifier := newVerifier(testSecret)
	if _, err := verifier.VerifyToken(context.Background(), raw); !errors.Is(err, httperr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyMissingBrandClaim(t *testing.T) {
	// Sign a structurally valid token without a brand_id.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &BrandClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verifier := newVerifier(testSecret)
	if _, err := verifier.VerifyToken(context.Background(), raw); !errors.Is(err, httperr.ErrMalformedClaims) {
		t.Fatalf("expected ErrMalformedClaims, got %v", err)
	}
}
