// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// TokenSigningSecret is the shared HMAC secret for brand access tokens.
	// Anything holding it can mint tokens, so it never leaves the service;
	// the builder only ever sees signed tokens.
	TokenSigningSecret string        `envconfig:"token_signing_secret" required:"true"`
	TokenLifetime      time.Duration `envconfig:"token_lifetime" default:"1h"`

	// OIDCIssuer enables bearer verification of dashboard sessions against
	// the identity provider. When empty the service trusts the
	// authenticated-identity header set by the fronting proxy.
	OIDCIssuer      string `envconfig:"oidc_issuer"`
	IdentityHeader  string `envconfig:"identity_header" default:"X-Authenticated-Identity-Id"`
	AdminIdentities string `envconfig:"admin_identities"`

	BuilderBaseURL    string `envconfig:"builder_base_url" required:"true"`
	APIBaseURL        string `envconfig:"api_base_url" required:"true"`
	PublicSiteBaseURL string `envconfig:"public_site_base_url" required:"true"`

	CORSAllowedOrigins string `envconfig:"cors_allowed_origins" default:"*"`
}
