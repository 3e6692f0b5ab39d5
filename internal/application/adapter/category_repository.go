// Package adapter defines interfaces for external dependencies.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for registry category persistence.
// Name lookups are case-insensitive; List returns categories sorted by name.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	// FindByName performs a case-insensitive name match. A miss returns
	// (nil, nil), not an error: misses always resolve through fallback.
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
