// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/tracing"
)

type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RequireBrandToken verifies the bearer token on every request it guards
// and injects the trusted claims into the context. Brand comparison against
// the request target happens in the handlers, where the target is known.
func (m *Middleware) RequireBrandToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.RequireBrandToken")
			defer span.End()

			token, found := bearerToken(r.Header)
			if !found {
				m.logger.Security().AuthnFailure("", "missing bearer token")
				httperr.WriteError(w, httperr.ErrMissingAuth, m.logger)
				return
			}

			claims, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Security().AuthnFailure("", "brand token rejected")
				httperr.WriteError(w, err, m.logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(ctx, claims)))
		})
	}
}

func bearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}
