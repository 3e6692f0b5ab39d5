// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordKind represents the kind of record (expense or income).
type RecordKind string

const (
	RecordKindExpense RecordKind = "expense"
	RecordKindIncome  RecordKind = "income"
)

// Record represents a single expense or income entry.
// CategoryName is a denormalized copy of the category's display name at the
// time of entry; deleting a category leaves the name in place.
type Record struct {
	ID           uuid.UUID
	Kind         RecordKind
	Amount       decimal.Decimal // Always positive; kind carries the sign
	CategoryName string
	OccurredAt   time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewRecord creates a new Record entity.
func NewRecord(
	kind RecordKind,
	amount decimal.Decimal,
	categoryName string,
	occurredAt time.Time,
	notes string,
) *Record {
	now := time.Now().UTC()

	return &Record{
		ID:           uuid.New(),
		Kind:         kind,
		Amount:       amount,
		CategoryName: categoryName,
		OccurredAt:   occurredAt,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
