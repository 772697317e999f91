// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wanderstack/brand-content-service/internal/db"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/storage"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
	"github.com/wanderstack/brand-content-service/pkg/brands"
	"github.com/wanderstack/brand-content-service/pkg/content"
	"github.com/wanderstack/brand-content-service/pkg/deeplink"
	"github.com/wanderstack/brand-content-service/pkg/metrics"
	"github.com/wanderstack/brand-content-service/pkg/status"
	"github.com/wanderstack/brand-content-service/pkg/token"
)

// Config carries the wiring the router needs beyond its dependencies.
type Config struct {
	BuilderBaseURL     string
	APIBaseURL         string
	PublicSiteBaseURL  string
	CORSAllowedOrigins []string
	IdentityHeader     string
}

// Deps groups the externally constructed services the router mounts.
type Deps struct {
	Issuer      authentication.TokenIssuerInterface
	Verifier    authentication.TokenVerifierInterface
	IdentityMdw *authentication.IdentityMiddleware

	BrandStorage   storage.BrandStorageInterface
	ContentStorage storage.ContentStorageInterface
}

func NewRouter(
	cfg Config,
	deps Deps,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", cfg.IdentityHeader},
		}),
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	tokenMdw := authentication.NewMiddleware(deps.Verifier, tracer, monitor, logger)

	contentSvc := content.NewService(deps.ContentStorage, deps.BrandStorage, cfg.PublicSiteBaseURL, tracer, monitor, logger)
	content.NewAPI(contentSvc, tokenMdw, tracer, monitor, logger).RegisterEndpoints(router)

	brandsSvc := brands.NewService(deps.BrandStorage, tracer, monitor, logger)
	brands.NewAPI(brandsSvc, deps.IdentityMdw, tracer, monitor, logger).RegisterEndpoints(router)

	tokenSvc := token.NewService(deps.Issuer, deps.BrandStorage, tracer, monitor, logger)
	token.NewAPI(tokenSvc, deps.IdentityMdw, tracer, monitor, logger).RegisterEndpoints(router)

	composer := deeplink.NewComposer(cfg.BuilderBaseURL, cfg.APIBaseURL)
	deeplink.NewAPI(composer, tokenSvc, deps.IdentityMdw, tracer, monitor, logger).RegisterEndpoints(router)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
