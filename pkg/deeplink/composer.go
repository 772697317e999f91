// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package deeplink composes the URL that opens the external builder with a
// brand token. The builder echoes the token back as its bearer credential on
// content-API calls, so the deeplink is the only authorization hand-off
// channel to that tool.
package deeplink

import (
	"fmt"
	"net/url"
	"strings"
)

// EntityRefs names the optional entities the builder should open with.
type EntityRefs struct {
	PageID     string
	TemplateID string
	MenuID     string
	HeaderID   string
	FooterID   string
}

// Composer builds builder deeplinks. Pure string composition; it performs no
// network calls and no token validation.
type Composer struct {
	builderBaseURL string
	apiBaseURL     string
}

func NewComposer(builderBaseURL, apiBaseURL string) *Composer {
	return &Composer{
		builderBaseURL: strings.TrimRight(builderBaseURL, "/"),
		apiBaseURL:     strings.TrimRight(apiBaseURL, "/"),
	}
}

// Compose returns the builder URL carrying the token, the API base, the
// brand and whichever entity references were supplied.
func (c *Composer) Compose(brandID, token string, refs EntityRefs) (string, error) {
	if brandID == "" {
		return "", fmt.Errorf("brand_id is required")
	}
	if token == "" {
		return "", fmt.Errorf("token is required")
	}

	u, err := url.Parse(c.builderBaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid builder base url: %w", err)
	}

	q := u.Query()
	q.Set("brand_id", brandID)
	q.Set("token", token)
	q.Set("api", c.apiBaseURL)
	if refs.PageID != "" {
		q.Set("page_id", refs.PageID)
	}
	if refs.TemplateID != "" {
		q.Set("template_id", refs.TemplateID)
	}
	if refs.MenuID != "" {
		q.Set("menu_id", refs.MenuID)
	}
	if refs.HeaderID != "" {
		q.Set("header_id", refs.HeaderID)
	}
	if refs.FooterID != "" {
		q.Set("footer_id", refs.FooterID)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
