package postgres

import (
	"context"
	"database/sql"
	"errors"

	"examdocs/internal/model"
	"examdocs/internal/repository"
)

// BundlePostgres is a PostgreSQL implementation of repository.BundleRepository.
type BundlePostgres struct {
	db *sql.DB
}

// NewBundlePostgres creates a new BundlePostgres repository.
func NewBundlePostgres(db *sql.DB) *BundlePostgres {
	return &BundlePostgres{db: db}
}

var _ repository.BundleRepository = (*BundlePostgres)(nil)

const bundleColumns = `id, filename, storage_path, size, content_type, course, exam_type, room_count, student_count, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanBundle(s scanner) (*model.Bundle, error) {
	var b model.Bundle
	if err := s.Scan(
		&b.ID,
		&b.Filename,
		&b.StoragePath,
		&b.Size,
		&b.ContentType,
		&b.Course,
		&b.ExamType,
		&b.RoomCount,
		&b.StudentCount,
		&b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new bundle row and returns the stored record.
func (r *BundlePostgres) Create(ctx context.Context, b *model.Bundle) (*model.Bundle, error) {
	const q = `
		INSERT INTO bundles (` + bundleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + bundleColumns
	row := r.db.QueryRowContext(ctx, q,
		b.ID,
		b.Filename,
		b.StoragePath,
		b.Size,
		b.ContentType,
		b.Course,
		b.ExamType,
		b.RoomCount,
		b.StudentCount,
		b.CreatedAt,
	)
	return scanBundle(row)
}

// FindByID fetches a single bundle by its ID.
func (r *BundlePostgres) FindByID(ctx context.Context, id string) (*model.Bundle, error) {
	const q = `SELECT ` + bundleColumns + ` FROM bundles WHERE id = $1`
	b, err := scanBundle(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// List returns bundles using LIMIT/OFFSET pagination and a total count.
func (r *BundlePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Bundle], error) {
	const qCount = `SELECT COUNT(*) FROM bundles`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + bundleColumns + ` FROM bundles ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Bundle, 0)
	for rows.Next() {
		b, err := scanBundle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Bundle]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a bundle by ID. It does not return an error if the row does not exist.
func (r *BundlePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM bundles WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
