// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// RecordModel represents the records table in the database.
type RecordModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind         string          `gorm:"type:varchar(10);not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryName string          `gorm:"type:varchar(50);not null"`
	OccurredAt   time.Time       `gorm:"not null;index"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "records"
}

// ToEntity converts a RecordModel to a domain Record entity.
func (m *RecordModel) ToEntity() *entity.Record {
	return &entity.Record{
		ID:           m.ID,
		Kind:         entity.RecordKind(m.Kind),
		Amount:       m.Amount,
		CategoryName: m.CategoryName,
		OccurredAt:   m.OccurredAt,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// RecordFromEntity creates a RecordModel from a domain Record entity.
func RecordFromEntity(record *entity.Record) *RecordModel {
	return &RecordModel{
		ID:           record.ID,
		Kind:         string(record.Kind),
		Amount:       record.Amount,
		CategoryName: record.CategoryName,
		OccurredAt:   record.OccurredAt,
		Notes:        record.Notes,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}
