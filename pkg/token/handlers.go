// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package token

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

type issueTokenRequest struct {
	BrandID string   `json:"brand_id" validate:"required"`
	Scopes  []string `json:"scopes"`
}

type issueTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type API struct {
	service     ServiceInterface
	identityMdw *authentication.IdentityMiddleware
	validate    *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	identityMdw *authentication.IdentityMiddleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:     service,
		identityMdw: identityMdw,
		validate:    validator.New(),
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api/v0/token", func(r chi.Router) {
		r.Use(a.identityMdw.RequireIdentity())
		r.Post("/", a.issueToken)
	})
}

func (a *API) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "token.API.issueToken")
	defer span.End()

	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteError(w, fmt.Errorf("invalid request body: %w", httperr.ErrValidation), a.logger)
		return
	}
	if err := a.validate.Struct(&req); err != nil {
		httperr.WriteError(w, fmt.Errorf("brand_id is required: %w", httperr.ErrValidation), a.logger)
		return
	}

	identity, _ := authentication.IdentityFromContext(ctx)

	result, err := a.service.IssueBrandToken(ctx, identity, req.BrandID, req.Scopes)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	httperr.JSON(w, http.StatusOK, issueTokenResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}
