// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/wanderstack/brand-content-service/internal/httperr"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/storage"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/internal/types"
	"github.com/wanderstack/brand-content-service/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

// Service implements the draft/publish lifecycle over the generic content
// storage. Every mutation checks the verified claims against the target
// brand; tenants are isolated by that check alone.
type Service struct {
	content storage.ContentStorageInterface
	brands  storage.BrandStorageInterface

	publicBaseURL string
	sanitizer     *bluemonday.Policy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	content storage.ContentStorageInterface,
	brands storage.BrandStorageInterface,
	publicBaseURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		content:       content,
		brands:        brands,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		sanitizer:     snapshotPolicy(),
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// snapshotPolicy strips script injection vectors from published snapshots
// while leaving the builder's rendered markup intact. The snapshot comes
// from an authenticated editor and must survive the publish round trip
// unchanged, so classed, styled and embedded elements stay as submitted;
// only scripts, event handlers and unsafe URL schemes are removed.
func snapshotPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"a", "abbr", "article", "aside", "b", "blockquote", "br", "button",
		"caption", "cite", "code", "dd", "del", "div", "dl", "dt", "em",
		"figcaption", "figure", "footer", "h1", "h2", "h3", "h4", "h5", "h6",
		"header", "hr", "i", "iframe", "img", "ins", "li", "main", "mark",
		"nav", "ol", "p", "picture", "pre", "q", "s", "section", "small",
		"source", "span", "strong", "sub", "sup", "table", "tbody", "td",
		"tfoot", "th", "thead", "tr", "u", "ul", "video",
	)

	p.AllowAttrs("class", "style", "id", "title", "role").Globally()
	p.AllowDataAttributes()
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "srcset", "alt", "width", "height", "loading").OnElements("img", "source")
	p.AllowAttrs("src", "width", "height", "allow", "allowfullscreen", "frameborder", "title").OnElements("iframe")
	p.AllowAttrs("src", "poster", "controls", "autoplay", "loop", "muted", "playsinline").OnElements("video")
	p.AllowAttrs("type").OnElements("button", "source")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")

	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("mailto", "tel", "http", "https")

	return p
}

func (s *Service) List(ctx context.Context, family types.Family, brandID string) ([]*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "content.Service.List")
	defer span.End()

	if brandID == "" {
		return nil, fmt.Errorf("brand_id is required: %w", httperr.ErrValidation)
	}

	return s.content.ListByBrand(ctx, family, brandID)
}

// SaveDraft upserts a draft. With an id it updates that row in place; without
// one it resolves by (brand_id, slug) and creates the row when absent, so
// retried calls never produce duplicates. The version bump happens in
// storage, inside the UPDATE itself.
func (s *Service) SaveDraft(ctx context.Context, family types.Family, claims *authentication.BrandClaims, in SaveDraftInput) (*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "content.Service.SaveDraft")
	defer span.End()

	if err := s.authorize(family, claims, in.BrandID); err != nil {
		return nil, err
	}

	upd := storage.DraftUpdate{
		Title:        in.Title,
		Slug:         in.Slug,
		DraftContent: in.Content,
		SortOrder:    in.SortOrder,
	}

	if in.ID != "" {
		if _, err := s.resolveOwned(ctx, family, claims, in.ID); err != nil {
			return nil, err
		}
		return s.updateDraft(ctx, family, in.ID, upd)
	}

	existing, err := s.content.GetBySlug(ctx, family, in.BrandID, in.Slug)
	switch {
	case err == nil:
		return s.updateDraft(ctx, family, existing.ID, upd)
	case errors.Is(err, storage.ErrNotFound):
		created, err := s.content.Insert(ctx, family, in.BrandID, upd)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				// Lost a create race; the row exists now, treat as update.
				if existing, getErr := s.content.GetBySlug(ctx, family, in.BrandID, in.Slug); getErr == nil {
					return s.updateDraft(ctx, family, existing.ID, upd)
				}
				return nil, fmt.Errorf("slug %q already in use: %w", in.Slug, httperr.ErrValidation)
			}
			return nil, err
		}
		return created, nil
	default:
		return nil, err
	}
}

func (s *Service) updateDraft(ctx context.Context, family types.Family, id string, upd storage.DraftUpdate) (*types.ContentEntity, error) {
	updated, err := s.content.UpdateDraft(ctx, family, id, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, httperr.ErrNotFound
		}
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("slug %q already in use: %w", upd.Slug, httperr.ErrValidation)
		}
		return nil, err
	}
	return updated, nil
}

// Publish stores the caller-rendered snapshot and marks the entity
// published. Publishing an already published entity refreshes the snapshot,
// so clients can safely retry.
func (s *Service) Publish(ctx context.Context, family types.Family, claims *authentication.BrandClaims, id, bodyHTML string) (*PublishResult, error) {
	ctx, span := s.tracer.Start(ctx, "content.Service.Publish")
	defer span.End()

	if bodyHTML == "" {
		return nil, fmt.Errorf("body_html is required: %w", httperr.ErrValidation)
	}

	entity, err := s.resolveOwned(ctx, family, claims, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkScope(family, claims); err != nil {
		return nil, err
	}

	snapshot := s.sanitizer.Sanitize(bodyHTML)

	published, err := s.content.Publish(ctx, family, id, snapshot)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, httperr.ErrNotFound
		}
		return nil, err
	}

	url, err := s.publicURL(ctx, family, entity.BrandID, published.Slug)
	if err != nil {
		s.logger.Warnf("failed to compose public url for %s %s: %v", family.Name, id, err)
	}

	return &PublishResult{Version: published.Version, URL: url}, nil
}

// Unpublish reverts to draft but keeps the last snapshot around for
// re-publish and rollback display.
func (s *Service) Unpublish(ctx context.Context, family types.Family, claims *authentication.BrandClaims, id string) error {
	ctx, span := s.tracer.Start(ctx, "content.Service.Unpublish")
	defer span.End()

	if _, err := s.resolveOwned(ctx, family, claims, id); err != nil {
		return err
	}

	if err := s.checkScope(family, claims); err != nil {
		return err
	}

	if _, err := s.content.Unpublish(ctx, family, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return httperr.ErrNotFound
		}
		return err
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, family types.Family, claims *authentication.BrandClaims, id string) error {
	ctx, span := s.tracer.Start(ctx, "content.Service.Delete")
	defer span.End()

	if _, err := s.resolveOwned(ctx, family, claims, id); err != nil {
		return err
	}

	if err := s.checkScope(family, claims); err != nil {
		return err
	}

	if err := s.content.Delete(ctx, family, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return httperr.ErrNotFound
		}
		return err
	}

	return nil
}

func (s *Service) Published(ctx context.Context, family types.Family, brandID string) ([]*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "content.Service.Published")
	defer span.End()

	return s.content.ListPublishedByBrand(ctx, family, brandID)
}

// authorize enforces the tenant-isolation rule for a mutation targeting
// targetBrand, plus the scope the family requires.
func (s *Service) authorize(family types.Family, claims *authentication.BrandClaims, targetBrand string) error {
	if targetBrand == "" {
		return fmt.Errorf("brand_id is required: %w", httperr.ErrValidation)
	}
	if claims == nil || claims.BrandID != targetBrand {
		if claims != nil {
			s.logger.Security().AuthzFailure(claims.Subject, family.WriteScope)
		}
		return httperr.ErrForbidden
	}
	return s.checkScope(family, claims)
}

func (s *Service) checkScope(family types.Family, claims *authentication.BrandClaims) error {
	if !claims.HasScope(family.WriteScope) {
		s.logger.Security().AuthzFailure(claims.Subject, family.WriteScope)
		return httperr.ErrForbidden
	}
	return nil
}

// resolveOwned loads an entity by id and confirms the caller's brand owns
// it. A wrong-tenant id is a 403, never a 404: the caller must not learn
// whether the id exists under another brand.
func (s *Service) resolveOwned(ctx context.Context, family types.Family, claims *authentication.BrandClaims, id string) (*types.ContentEntity, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required: %w", httperr.ErrValidation)
	}

	entity, err := s.content.GetByID(ctx, family, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, httperr.ErrNotFound
		}
		return nil, err
	}

	if claims == nil || claims.BrandID != entity.BrandID {
		if claims != nil {
			s.logger.Security().AuthzFailure(claims.Subject, family.WriteScope)
		}
		return nil, httperr.ErrForbidden
	}

	return entity, nil
}

func (s *Service) publicURL(ctx context.Context, family types.Family, brandID, slug string) (string, error) {
	brand, err := s.brands.GetBrandByID(ctx, brandID)
	if err != nil {
		return "", err
	}

	if family.Name == types.FamilyPages.Name {
		return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, brand.Slug, slug), nil
	}
	return fmt.Sprintf("%s/%s/%s/%s", s.publicBaseURL, brand.Slug, family.Name, slug), nil
}
