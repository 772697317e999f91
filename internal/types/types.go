// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"time"
)

// Content entity statuses. An entity is created as a draft and flips to
// published on the first publish transition. Further draft saves never
// change the status.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Brand struct {
	ID        string    `json:"id" db:"id"`
	Slug      string    `json:"slug" db:"slug"`
	Name      string    `json:"name" db:"name"`
	Enabled   bool      `json:"enabled" db:"enabled"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Membership entitles a dashboard identity to act on a brand.
type Membership struct {
	ID         string    `json:"id" db:"id"`
	BrandID    string    `json:"brand_id" db:"brand_id"`
	IdentityID string    `json:"identity_id" db:"identity_id"`
	Role       string    `json:"role" db:"role"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Membership roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleAgent  = "agent"
)

// ContentEntity is one row of a content family table. DraftContent is the
// opaque authoring document; PublishedSnapshot is the rendered markup
// written only by a publish transition.
type ContentEntity struct {
	ID                string          `json:"id" db:"id"`
	BrandID           string          `json:"brand_id" db:"brand_id"`
	Slug              string          `json:"slug" db:"slug"`
	Title             string          `json:"title" db:"title"`
	DraftContent      json.RawMessage `json:"draft_content,omitempty" db:"draft_content"`
	PublishedSnapshot string          `json:"published_snapshot,omitempty" db:"published_snapshot"`
	Status            string          `json:"status" db:"status"`
	Version           int64           `json:"version" db:"version"`
	SortOrder         int64           `json:"sort_order,omitempty" db:"sort_order"`
	PublishedAt       *time.Time      `json:"published_at,omitempty" db:"published_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
}
