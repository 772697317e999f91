// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package brands

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

type createBrandRequest struct {
	Slug string `json:"slug" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type updateBrandRequest struct {
	Slug    *string `json:"slug"`
	Name    *string `json:"name"`
	Enabled *bool   `json:"enabled"`
}

type addMemberRequest struct {
	IdentityID string `json:"identity_id" validate:"required"`
	Role       string `json:"role" validate:"required"`
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
	mux.Route("/api/v0/brands", func(r chi.Router) {
		r.Use(a.identityMdw.RequireIdentity())

		r.Get("/", a.listBrands)
		r.Post("/", a.createBrand)
		r.Get("/{id}", a.getBrand)
		r.Patch("/{id}", a.updateBrand)
		r.Delete("/{id}", a.deleteBrand)
		r.Get("/{id}/members", a.listMembers)
		r.Post("/{id}/members", a.addMember)
	})
}

func (a *API) listBrands(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "brands.API.listBrands")
	defer span.End()

	identity, _ := authentication.IdentityFromContext(ctx)

	items, err := a.service.ListBrands(ctx, identity)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"brands": items})
}

func (a *API) createBrand(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "brands.API.createBrand")
	defer span.End()

	var req createBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteError(w, fmt.Errorf("invalid request body: %w", httperr.ErrValidation), a.logger)
		return
	}
	if err := a.validate.Struct(&req); err != nil {
		httperr.WriteError(w, fmt.Errorf("%v: %w", err, httperr.ErrValidation), a.logger)
		return
	}

	identity, _ := authentication.IdentityFromContext(ctx)

	brand, err := a.service.CreateBrand(ctx, identity, CreateBrandInput{Slug: req.Slug, Name: req.Name})
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}
	httperr.JSON(w, http.StatusCreated, brand)
}

func (a *API) getBrand(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "brands.API.getBrand")
	defer span.End()

	brand, err := a.service.GetBrand(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}
	httperr.JSON(w, http.StatusOK, brand)
}

func (a *API) updateBrand(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "brands.API.updateBrand")
	defer span.End()

	var req updateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteError(w, fmt.Errorf("invalid request body: %w", httperr.ErrValidation), a.logger)
		return
	}

	identity, _ := authentication.IdentityFromContext(ctx)

	brand, err := a.service.UpdateBrand(ctx, identity, chi.URLParam(r, "id"), UpdateBrandInput{
		Slug:    req.Slug,
		Name:    req.Name,
		Enabled: req.Enabled,
	})
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}
	httperr.JSON(w, http.StatusOK, brand)
}

func (a *API) deleteBrand(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "brands.API.deleteBrand")
	defer span.End()

	identity, _ := authentication.IdentityFromContext(ctx)

	if err := a.service.DeleteBrand(ctx, identity, chi.URLParam(r, "id")); err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "brands.API.listMembers")
	defer span.End()

	identity, _ := authentication.IdentityFromContext(ctx)

	members, err := a.service.ListMembers(ctx, identity, chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"members": members})
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "brands.API.addMember")
	defer span.End()

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteError(w, fmt.Errorf("invalid request body: %w", httperr.ErrValidation), a.logger)
		return
	}
	if err := a.validate.Struct(&req); err != nil {
		httperr.WriteError(w, fmt.Errorf("%v: %w", err, httperr.ErrValidation), a.logger)
		return
	}

	identity, _ := authentication.IdentityFromContext(ctx)

	id, err := a.service.AddMember(ctx, identity, chi.URLParam(r, "id"), req.IdentityID, req.Role)
	if err != nil {
		httperr.WriteError(w, err, a.logger)
		return
	}
	httperr.JSON(w, http.StatusCreated, map[string]any{"id": id})
}
