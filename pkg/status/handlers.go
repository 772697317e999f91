// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package status serves the liveness and readiness endpoints.
package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderstack/brand-content-service/internal/db"
	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/internal/version"
)

type buildInfo struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type API struct {
	dbClient db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(dbClient db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		dbClient: dbClient,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	httperr.JSON(w, http.StatusOK, buildInfo{Status: "ok", Version: version.Version})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	if err := a.dbClient.Ping(ctx); err != nil {
		_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, 0)
		a.logger.Errorf("readiness probe failed: %v", err)
		httperr.JSON(w, http.StatusServiceUnavailable, buildInfo{Status: "unavailable", Version: version.Version})
		return
	}

	_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, 1)
	httperr.JSON(w, http.StatusOK, buildInfo{Status: "ok", Version: version.Version})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	httperr.JSON(w, http.StatusOK, map[string]any{"version": version.Version})
}
