// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

var (
	tokenBrandID  string
	tokenSubject  string
	tokenScopes   []string
	tokenSecret   string
	tokenLifetime time.Duration
)

// tokenCmd mints a brand token locally from the signing secret. Useful for
// exercising the content API without going through the dashboard.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a brand-scoped access token",
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.NewNoopLogger()
		issuer := authentication.NewTokenIssuer(
			tokenSecret,
			tokenLifetime,
			tracing.NewNoopTracer(),
			monitoring.NewNoopMonitor(),
			logger,
		)

		token, expiresAt, err := issuer.IssueToken(context.Background(), tokenBrandID, tokenSubject, tokenScopes)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}

		fmt.Println(token)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenBrandID, "brand-id", "", "Brand ID the token is scoped to")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "cli", "Subject recorded in the token")
	tokenCmd.Flags().StringSliceVar(&tokenScopes, "scopes", []string{}, "Scopes (comma-separated, defaults to the full builder set)")
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Token signing secret")
	tokenCmd.Flags().DurationVar(&tokenLifetime, "lifetime", time.Hour, "Token lifetime")

	_ = tokenCmd.MarkFlagRequired("brand-id")
	_ = tokenCmd.MarkFlagRequired("secret")
}
