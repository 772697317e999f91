// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/wanderstack/brand-content-service/internal/config"
	"github.com/wanderstack/brand-content-service/internal/db"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring/prometheus"
	"github.com/wanderstack/brand-content-service/internal/storage"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
	"github.com/wanderstack/brand-content-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("brand-content-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	brandStorage := storage.NewBrandStorage(dbClient, tracer, monitor, logger)
	contentStorage := storage.NewContentStorage(dbClient, tracer, monitor, logger)

	issuer := authentication.NewTokenIssuer(specs.TokenSigningSecret, specs.TokenLifetime, tracer, monitor, logger)
	verifier := authentication.NewTokenVerifier(specs.TokenSigningSecret, tracer, monitor, logger)

	var sessionVerifier authentication.IdentityVerifierInterface
	if specs.OIDCIssuer != "" {
		sessionVerifier, err = authentication.NewOIDCSessionVerifier(context.Background(), specs.OIDCIssuer, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to reach OIDC issuer: %w", err)
		}
		logger.Info("Dashboard sessions verified against OIDC issuer")
	} else {
		logger.Info("Dashboard sessions resolved from the identity header")
	}

	identityMdw := authentication.NewIdentityMiddleware(
		sessionVerifier,
		specs.IdentityHeader,
		splitAndTrim(specs.AdminIdentities),
		tracer,
		monitor,
		logger,
	)

	router := web.NewRouter(
		web.Config{
			BuilderBaseURL:     specs.BuilderBaseURL,
			APIBaseURL:         specs.APIBaseURL,
			PublicSiteBaseURL:  specs.PublicSiteBaseURL,
			CORSAllowedOrigins: splitAndTrim(specs.CORSAllowedOrigins),
			IdentityHeader:     specs.IdentityHeader,
		},
		web.Deps{
			Issuer:         issuer,
			Verifier:       verifier,
			IdentityMdw:    identityMdw,
			BrandStorage:   brandStorage,
			ContentStorage: contentStorage,
		},
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func splitAndTrim(csv string) []string {
	if csv == "" {
		return nil
	}

	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
