// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package deeplink

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
	"github.com/wanderstack/brand-content-service/pkg/token"
)

type builderLinkRequest struct {
	BrandID    string   `json:"brand_id" validate:"required"`
	Scopes     []string `json:"scopes"`
	PageID     string   `json:"page_id"`
	TemplateID string   `json:"template_id"`
	MenuID     string   `json:"menu_id"`
	HeaderID   string   `json:"header_id"`
	FooterID   string   `json:"footer_id"`
}

type builderLinkResponse struct {
	URL       string `json:"url"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// API serves the one-call builder session endpoint: mint a brand token and
// return the deeplink the dashboard opens.
type API struct {
	composer    *Composer
	tokens      token.ServiceInterface
	identityMdw *authentication.IdentityMiddleware
	validate    *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	composer *Composer,
	tokens token.ServiceInterface,
	identityMdw *authentication.IdentityMiddleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		composer:    composer,
		tokens:      tokens,
		identityMdw: identityMdw,
		validate:    validator.New(),
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api/v0/builder-link", func(r chi.Router) {
		r.Use(a.identityMdw.RequireIdentity())
		r.Post("/", a.builderLink)
	})
}

func (a *API) builderLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "deeplink.API.builderLink")
	defer span.End()

	var req builderLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteError(w, fmt.Errorf("invalid request body: %w", httperr.ErrValidation), a.logger)
		return
	}
	if err := a.validate.Struct(&req); err != nil {
		httperr.WriteError(w, fmt.Errorf("brand_id is required: %w", httperr.ErrValidation), a.logger)
		return
	}

	identity, _ := authentication.IdentityFromContext(ctx)

	result, err := a.tokens.IssueBrandToken(ctx, identity, req.BrandID, req.Scopes)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	link, err := a.composer.Compose(req.BrandID, result.Token, EntityRefs{
		PageID:     req.PageID,
		TemplateID: req.TemplateID,
		MenuID:     req.MenuID,
		HeaderID:   req.HeaderID,
		FooterID:   req.FooterID,
	})
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}

	httperr.JSON(w, http.StatusOK, builderLinkResponse{
		URL:       link,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
