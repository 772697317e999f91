// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wanderstack/brand-content-service/internal/logging"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrMissingAuth, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrExpiredToken, http.StatusUnauthorized},
		{ErrMalformedClaims, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrValidation, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := Status(tt.err); got != tt.want {
			t.Errorf("Status(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestStatusResolvesWrappedErrors(t *testing.T) {
	err := fmt.Errorf("entity page-1: %w", ErrForbidden)
	if got := Status(err); got != http.StatusForbidden {
		t.Errorf("Status(wrapped) = %d, want 403", got)
	}
	if got := Code(err); got != "forbidden" {
		t.Errorf("Code(wrapped) = %q, want forbidden", got)
	}
}

func TestWriteErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, fmt.Errorf("slug taken: %w", ErrValidation), logging.NewNoopLogger())

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Errorf("code = %q", body.Error.Code)
	}
	if body.Error.Message != "slug taken: invalid request" {
		t.Errorf("message = %q", body.Error.Message)
	}
}

func TestWriteErrorMasksInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("pq: connection refused at 10.0.0.3"), logging.NewNoopLogger())

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error.Message != "internal error" {
		t.Errorf("internal details leaked: %q", body.Error.Message)
	}
}
