// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package httperr carries the service error taxonomy and its mapping onto
// HTTP status codes. Handlers return plain errors wrapping one of the
// sentinels below; the response writer resolves them at the edge.
package httperr

import (
	"errors"
	"net/http"
)

// Sentinel error kinds. Verification failures are deliberately distinct from
// ErrForbidden: a caller with a bad credential gets 401, a verified caller
// acting on the wrong brand gets 403.
var (
	ErrMissingAuth     = errors.New("missing or malformed authorization header")
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token expired")
	ErrMalformedClaims = errors.New("token claims missing brand_id")
	ErrForbidden       = errors.New("caller is not entitled to this brand")
	ErrValidation      = errors.New("invalid request")
	ErrNotFound        = errors.New("resource not found")
)

// Status maps an error to its HTTP status code. Anything outside the
// taxonomy is an internal error.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrMissingAuth),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrExpiredToken),
		errors.Is(err, ErrMalformedClaims):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the stable machine-readable code for an error kind.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrMissingAuth):
		return "missing_auth"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, ErrExpiredToken):
		return "expired_token"
	case errors.Is(err, ErrMalformedClaims):
		return "malformed_claims"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}
