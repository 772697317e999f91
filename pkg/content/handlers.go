// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

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
	"github.com/wanderstack/brand-content-service/internal/types"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

type saveDraftRequest struct {
	BrandID   string          `json:"brand_id" validate:"required"`
	ID        string          `json:"id"`
	Title     string          `json:"title" validate:"required"`
	Slug      string          `json:"slug" validate:"required"`
	Content   json.RawMessage `json:"content"`
	SortOrder *int64          `json:"sort_order"`
}

type publishRequest struct {
	BodyHTML string `json:"body_html" validate:"required"`
}

type publishedItem struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	BodyHTML    string     `json:"body_html"`
	SortOrder   int64      `json:"sort_order"`
	PublishedAt *time.Time `json:"published_at"`
}

// API serves the per-family content endpoints. The same handler set mounts
// once per family; the family descriptor is bound into each route.
type API struct {
	service  ServiceInterface
	tokenMdw *authentication.Middleware
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tokenMdw *authentication.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		tokenMdw: tokenMdw,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	for _, family := range types.Families {
		family := family
		mux.Route("/"+family.Name+"-api", func(r chi.Router) {
			// Reads are token-free; published pages are public by definition
			// and the dashboard lists drafts through the same endpoints.
			r.Get("/", a.list(family))
			r.Get("/list", a.list(family))
			r.Get("/{brandID}/published", a.published(family))

			r.Group(func(r chi.Router) {
				r.Use(a.tokenMdw.RequireBrandToken())
				r.Post("/saveDraft", a.saveDraft(family))
				r.Post("/{id}/publish", a.publish(family))
				r.Post("/{id}/unpublish", a.unpublish(family))
				r.Delete("/{id}", a.delete(family))
			})
		})
	}
}

func (a *API) list(family types.Family) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "content.API.list")
		defer span.End()

		brandID := r.URL.Query().Get("brand_id")
		items, err := a.service.List(ctx, family, brandID)
		if err != nil {
			httperr.WriteError(w, err, a.logger)
			return
		}

		if items == nil {
			items = []*types.ContentEntity{}
		}
		httperr.JSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

func (a *API) saveDraft(family types.Family) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "content.API.saveDraft")
		defer span.End()

		var req saveDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.WriteError(w, fmt.Errorf("invalid request body: %w", httperr.ErrValidation), a.logger)
			return
		}
		if err := a.validate.Struct(&req); err != nil {
			httperr.WriteError(w, fmt.Errorf("%v: %w", err, httperr.ErrValidation), a.logger)
			return
		}

		claims, _ := authentication.ClaimsFromContext(ctx)

		entity, err := a.service.SaveDraft(ctx, family, claims, SaveDraftInput{
			BrandID:   req.BrandID,
			ID:        req.ID,
			Title:     req.Title,
			Slug:      req.Slug,
			Content:   req.Content,
			SortOrder: req.SortOrder,
		})
		if err != nil {
			httperr.WriteError(w, err, a.logger)
			return
		}

		httperr.JSON(w, http.StatusOK, map[string]any{
			"id":      entity.ID,
			"slug":    entity.Slug,
			"version": entity.Version,
		})
	}
}

func (a *API) publish(family types.Family) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "content.API.publish")
		defer span.End()

		var req publishRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.WriteError(w, fmt.Errorf("invalid request body: %w", httperr.ErrValidation), a.logger)
			return
		}
		if err := a.validate.Struct(&req); err != nil {
			httperr.WriteError(w, fmt.Errorf("body_html is required: %w", httperr.ErrValidation), a.logger)
			return
		}

		claims, _ := authentication.ClaimsFromContext(ctx)

		result, err := a.service.Publish(ctx, family, claims, chi.URLParam(r, "id"), req.BodyHTML)
		if err != nil {
			httperr.WriteError(w, err, a.logger)
			return
		}

		httperr.JSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"version": result.Version,
			"url":     result.URL,
		})
	}
}

func (a *API) unpublish(family types.Family) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "content.API.unpublish")
		defer span.End()

		claims, _ := authentication.ClaimsFromContext(ctx)

		if err := a.service.Unpublish(ctx, family, claims, chi.URLParam(r, "id")); err != nil {
			httperr.WriteError(w, err, a.logger)
			return
		}

		httperr.JSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func (a *API) delete(family types.Family) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "content.API.delete")
		defer span.End()

		claims, _ := authentication.ClaimsFromContext(ctx)

		if err := a.service.Delete(ctx, family, claims, chi.URLParam(r, "id")); err != nil {
			httperr.WriteError(w, err, a.logger)
			return
		}

		httperr.JSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// published serves the rendered snapshots for a brand. Layout families
// respond with empty defaults rather than an error when nothing has been
// published yet, so the public site renderer never special-cases them.
func (a *API) published(family types.Family) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "content.API.published")
		defer span.End()

		entities, err := a.service.Published(ctx, family, chi.URLParam(r, "brandID"))
		if err != nil {
			httperr.WriteError(w, err, a.logger)
			return
		}

		items := make([]publishedItem, 0, len(entities))
		for _, e := range entities {
			items = append(items, publishedItem{
				ID:          e.ID,
				Slug:        e.Slug,
				Title:       e.Title,
				BodyHTML:    e.PublishedSnapshot,
				SortOrder:   e.SortOrder,
				PublishedAt: e.PublishedAt,
			})
		}

		body := map[string]any{"items": items}
		if family.Layout {
			// Single-entity layout families also surface the snapshot
			// directly for the renderer.
			bodyHTML := ""
			if len(items) > 0 {
				bodyHTML = items[0].BodyHTML
			}
			body["body_html"] = bodyHTML
		}

		httperr.JSON(w, http.StatusOK, body)
	}
}
