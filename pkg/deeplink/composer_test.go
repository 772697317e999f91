// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package deeplink

import (
	"net/url"
	"testing"
)

func TestComposeCarriesRequiredParams(t *testing.T) {
	c := NewComposer("https://builder.example.com/editor", "https://api.example.com")

	link, err := c.Compose("brand-1", "signed-token", EntityRefs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("composed link does not parse: %v", err)
	}
	q := u.Query()
	if q.Get("brand_id") != "brand-1" {
		t.Errorf("brand_id = %q", q.Get("brand_id"))
	}
	if q.Get("token") != "signed-token" {
		t.Errorf("token = %q", q.Get("token"))
	}
	if q.Get("api") != "https://api.example.com" {
		t.Errorf("api = %q", q.Get("api"))
	}
	if u.Host != "builder.example.com" || u.Path != "/editor" {
		t.Errorf("unexpected base %q", link)
	}
}

func TestComposeIncludesOnlySuppliedRefs(t *testing.T) {
	c := NewComposer("https://builder.example.com", "https://api.example.com")

	link, err := c.Compose("brand-1", "tok", EntityRefs{PageID: "page-1", MenuID: "menu-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, _ := url.Parse(link)
	q := u.Query()
	if q.Get("page_id") != "page-1" || q.Get("menu_id") != "menu-1" {
		t.Errorf("expected supplied refs, got %q", link)
	}
	for _, absent := range []string{"template_id", "header_id", "footer_id"} {
		if q.Has(absent) {
			t.Errorf("param %q should be absent from %q", absent, link)
		}
	}
}

func TestComposeEscapesToken(t *testing.T) {
	c := NewComposer("https://builder.example.com", "https://api.example.com")

	link, err := c.Compose("brand-1", "a+b c&d=e", EntityRefs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, _ := url.Parse(link)
	if got := u.Query().Get("token"); got != "a+b c&d=e" {
		t.Errorf("token did not survive the round trip: %q", got)
	}
}

func TestComposeValidatesInputs(t *testing.T) {
	c := NewComposer("https://builder.example.com", "https://api.example.com")

	if _, err := c.Compose("", "tok", EntityRefs{}); err == nil {
		t.Error("expected error for empty brand_id")
	}
	if _, err := c.Compose("brand-1", "", EntityRefs{}); err == nil {
		t.Error("expected error for empty token")
	}
}
