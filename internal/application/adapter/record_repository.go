// Package adapter defines interfaces for external dependencies.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// RecordRepository defines the interface for record persistence operations.
// ListByKind returns records ordered by occurrence timestamp descending.
type RecordRepository interface {
	Create(ctx context.Context, record *entity.Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)
	ListByKind(ctx context.Context, kind entity.RecordKind) ([]*entity.Record, error)
	Update(ctx context.Context, record *entity.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
}
