// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wanderstack/brand-content-service/internal/db"
	"github.com/wanderstack/brand-content-service/internal/logging"
	"github.com/wanderstack/brand-content-service/internal/monitoring"
	"github.com/wanderstack/brand-content-service/internal/tracing"
	"github.com/wanderstack/brand-content-service/internal/types"
)

var _ ContentStorageInterface = (*ContentStorage)(nil)

// ContentStorage is the generic versioned-entity storage. Every family
// table shares the same columns; the family descriptor selects the table
// and the ordering rule.
type ContentStorage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewContentStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ContentStorage {
	s := new(ContentStorage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

var contentColumns = []string{
	"id", "brand_id", "slug", "title", "draft_content", "published_snapshot",
	"status", "version", "sort_order", "published_at", "created_at", "updated_at",
}

func scanEntity(row sq.RowScanner) (*types.ContentEntity, error) {
	var e types.ContentEntity
	err := row.Scan(
		&e.ID, &e.BrandID, &e.Slug, &e.Title, &e.DraftContent, &e.PublishedSnapshot,
		&e.Status, &e.Version, &e.SortOrder, &e.PublishedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		// The squirrel runner goes through database/sql on top of pgx, so
		// either sentinel can surface depending on the code path.
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *ContentStorage) ListByBrand(ctx context.Context, family types.Family, brandID string) ([]*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ContentStorage.ListByBrand")
	defer span.End()

	return s.list(ctx, family, sq.Eq{"brand_id": brandID})
}

func (s *ContentStorage) ListPublishedByBrand(ctx context.Context, family types.Family, brandID string) ([]*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ContentStorage.ListPublishedByBrand")
	defer span.End()

	return s.list(ctx, family, sq.Eq{"brand_id": brandID, "status": types.StatusPublished})
}

func (s *ContentStorage) list(ctx context.Context, family types.Family, where sq.Eq) ([]*types.ContentEntity, error) {
	order := "updated_at DESC"
	if family.Ordered {
		order = "sort_order, created_at"
	}

	query := s.db.Statement(ctx).
		Select(contentColumns...).
		From(family.Table).
		Where(where).
		OrderBy(order)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", family.Name, err)
	}
	defer rows.Close()

	var entities []*types.ContentEntity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", family.Name, err)
		}
		entities = append(entities, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entities, nil
}

func (s *ContentStorage) GetByID(ctx context.Context, family types.Family, id string) (*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ContentStorage.GetByID")
	defer span.End()

	return s.get(ctx, family, sq.Eq{"id": id})
}

func (s *ContentStorage) GetBySlug(ctx context.Context, family types.Family, brandID, slug string) (*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ContentStorage.GetBySlug")
	defer span.End()

	return s.get(ctx, family, sq.Eq{"brand_id": brandID, "slug": slug})
}

func (s *ContentStorage) get(ctx context.Context, family types.Family, where sq.Eq) (*types.ContentEntity, error) {
	row := s.db.Statement(ctx).
		Select(contentColumns...).
		From(family.Table).
		Where(where).
		QueryRowContext(ctx)

	e, err := scanEntity(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", family.Name, err)
	}

	return e, nil
}

func (s *ContentStorage) Insert(ctx context.Context, family types.Family, brandID string, upd DraftUpdate) (*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ContentStorage.Insert")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entity ID: %w", err)
	}

	sortOrder := int64(0)
	if upd.SortOrder != nil {
		sortOrder = *upd.SortOrder
	}

	row := s.db.Statement(ctx).
		Insert(family.Table).
		Columns("id", "brand_id", "slug", "title", "draft_content", "status", "version", "sort_order").
		Values(id.String(), brandID, upd.Slug, upd.Title, []byte(upd.DraftContent), types.StatusDraft, 1, sortOrder).
		Suffix(returningClause()).
		QueryRowContext(ctx)

	e, err := scanEntity(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s slug %q already exists for brand: %w", family.Name, upd.Slug, ErrDuplicateKey)
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert %s: %w", family.Name, err)
	}

	return e, nil
}

// UpdateDraft mutates draft fields only. The version bump happens inside
// the UPDATE so concurrent saves serialize on the row and no increment is
// lost; status and published_snapshot are untouched.
func (s *ContentStorage) UpdateDraft(ctx context.Context, family types.Family, id string, upd DraftUpdate) (*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ContentStorage.UpdateDraft")
	defer span.End()

	query := s.db.Statement(ctx).
		Update(family.Table).
		Set("title", upd.Title).
		Set("slug", upd.Slug).
		Set("draft_content", []byte(upd.DraftContent)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if upd.SortOrder != nil {
		query = query.Set("sort_order", *upd.SortOrder)
	}

	row := query.Suffix(returningClause()).QueryRowContext(ctx)

	e, err := scanEntity(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s slug %q already exists for brand: %w", family.Name, upd.Slug, ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to update %s draft: %w", family.Name, err)
	}

	return e, nil
}

// Publish stores the rendered snapshot and flips the entity to published.
// Re-publishing an already published entity is legal and refreshes the
// snapshot and published_at.
func (s *ContentStorage) Publish(ctx context.Context, family types.Family, id, snapshot string) (*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ContentStorage.Publish")
	defer span.End()

	row := s.db.Statement(ctx).
		Update(family.Table).
		Set("status", types.StatusPublished).
		Set("published_snapshot", snapshot).
		Set("published_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningClause()).
		QueryRowContext(ctx)

	e, err := scanEntity(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to publish %s: %w", family.Name, err)
	}

	return e, nil
}

// Unpublish reverts the status to draft. The last published snapshot is
// kept for re-publish and rollback display.
func (s *ContentStorage) Unpublish(ctx context.Context, family types.Family, id string) (*types.ContentEntity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ContentStorage.Unpublish")
	defer span.End()

	row := s.db.Statement(ctx).
		Update(family.Table).
		Set("status", types.StatusDraft).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningClause()).
		QueryRowContext(ctx)

	e, err := scanEntity(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to unpublish %s: %w", family.Name, err)
	}

	return e, nil
}

func (s *ContentStorage) Delete(ctx context.Context, family types.Family, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ContentStorage.Delete")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete(family.Table).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", family.Name, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func returningClause() string {
	clause := "RETURNING "
	for i, c := range contentColumns {
		if i > 0 {
			clause += ", "
		}
		clause += c
	}
	return clause
}
