// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create creates a new record in the database.
func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a record by its ID.
func (r *recordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	var recordModel model.RecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// ListByKind retrieves all records of one kind, newest first.
func (r *recordRepository) ListByKind(ctx context.Context, kind entity.RecordKind) ([]*entity.Record, error) {
	var recordModels []model.RecordModel
	result := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("occurred_at DESC, created_at DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.Record, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// Update updates an existing record in the database.
func (r *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).Save(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete deletes a record from the database.
func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
