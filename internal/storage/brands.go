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

var _ BrandStorageInterface = (*BrandStorage)(nil)

type BrandStorage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewBrandStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *BrandStorage {
	s := new(BrandStorage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

const brandColumns = "id, slug, name, enabled, created_at"

func (s *BrandStorage) CreateBrand(ctx context.Context, b *types.Brand) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BrandStorage.CreateBrand")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate brand ID: %w", err)
	}

	var created types.Brand
	err = s.db.Statement(ctx).
		Insert("brands").
		Columns("id", "slug", "name", "enabled").
		Values(id.String(), b.Slug, b.Name, b.Enabled).
		Suffix("RETURNING " + brandColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Slug, &created.Name, &created.Enabled, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("brand slug %q: %w", b.Slug, ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to insert brand: %w", err)
	}

	return &created, nil
}

func (s *BrandStorage) GetBrandByID(ctx context.Context, id string) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BrandStorage.GetBrandByID")
	defer span.End()

	return s.getBrand(ctx, sq.Eq{"id": id})
}

func (s *BrandStorage) GetBrandBySlug(ctx context.Context, slug string) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BrandStorage.GetBrandBySlug")
	defer span.End()

	return s.getBrand(ctx, sq.Eq{"slug": slug})
}

func (s *BrandStorage) getBrand(ctx context.Context, where sq.Eq) (*types.Brand, error) {
	var b types.Brand
	err := s.db.Statement(ctx).
		Select("id", "slug", "name", "enabled", "created_at").
		From("brands").
		Where(where).
		QueryRowContext(ctx).
		Scan(&b.ID, &b.Slug, &b.Name, &b.Enabled, &b.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return &b, nil
}

func (s *BrandStorage) ListBrands(ctx context.Context) ([]*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BrandStorage.ListBrands")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "slug", "name", "enabled", "created_at").
		From("brands").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var brands []*types.Brand
	for rows.Next() {
		var b types.Brand
		if err := rows.Scan(&b.ID, &b.Slug, &b.Name, &b.Enabled, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating brand rows: %w", err)
	}

	return brands, nil
}

// UpdateBrand updates the fields named in paths, PATCH style.
func (s *BrandStorage) UpdateBrand(ctx context.Context, b *types.Brand, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.BrandStorage.UpdateBrand")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = b.Name
		case "slug":
			updateMap["slug"] = b.Slug
		case "enabled":
			updateMap["enabled"] = b.Enabled
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("brands").
		SetMap(updateMap).
		Where(sq.Eq{"id": b.ID}).
		ExecContext(ctx)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return fmt.Errorf("brand slug %q: %w", b.Slug, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update brand: %w", err)
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

func (s *BrandStorage) DeleteBrand(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.BrandStorage.DeleteBrand")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("brands").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
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

func (s *BrandStorage) AddMember(ctx context.Context, brandID, identityID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BrandStorage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "brand_id", "identity_id", "role").
		Values(id.String(), brandID, identityID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

func (s *BrandStorage) GetMembership(ctx context.Context, brandID, identityID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BrandStorage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "brand_id", "identity_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"brand_id": brandID, "identity_id": identityID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.BrandID, &m.IdentityID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *BrandStorage) ListMembersByBrandID(ctx context.Context, brandID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BrandStorage.ListMembersByBrandID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "brand_id", "identity_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"brand_id": brandID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.BrandID, &m.IdentityID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *BrandStorage) ListBrandsByIdentityID(ctx context.Context, identityID string) ([]*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BrandStorage.ListBrandsByIdentityID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("b.id", "b.slug", "b.name", "b.enabled", "b.created_at").
		From("brands b").
		Join("memberships m ON b.id = m.brand_id").
		Where(sq.Eq{"m.identity_id": identityID, "b.enabled": true}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var brands []*types.Brand
	for rows.Next() {
		var b types.Brand
		if err := rows.Scan(&b.ID, &b.Slug, &b.Name, &b.Enabled, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return brands, nil
}
