// Package repository contains data access abstractions for archived bundles.
// Implementations live in subpackages (e.g., postgres).
package repository

import (
	"context"
	"errors"

	"examdocs/internal/model"
)

// ErrNotFound is returned when no row matches the lookup.
var ErrNotFound = errors.New("record not found")

// BundleRepository defines data access for archived bundle metadata using SQL queries only.
// No business logic here, strictly persistence operations.
type BundleRepository interface {
	// Create inserts a new bundle record and returns it as stored.
	Create(ctx context.Context, b *model.Bundle) (*model.Bundle, error)

	// FindByID returns a bundle by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Bundle, error)

	// List returns a page of bundles, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Bundle], error)

	// Delete removes a bundle by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
