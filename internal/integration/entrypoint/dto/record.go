package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateRecordRequest represents the request body for record creation.
type CreateRecordRequest struct {
	Kind         string          `json:"kind" binding:"required,oneof=expense income"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CategoryName string          `json:"category_name" binding:"required"`
	OccurredAt   time.Time       `json:"occurred_at" binding:"required"`
	Notes        string          `json:"notes,omitempty"`
}

// UpdateRecordRequest represents the request body for record update. The
// edit replaces amount, category, date and notes wholesale.
type UpdateRecordRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CategoryName string          `json:"category_name" binding:"required"`
	OccurredAt   time.Time       `json:"occurred_at" binding:"required"`
	Notes        string          `json:"notes"`
}

// RecordResponse represents a single record in API responses.
type RecordResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryName string          `json:"category_name"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RecordListResponse represents the response for listing records.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

// ToRecordResponse converts a domain Record entity to a RecordResponse DTO.
func ToRecordResponse(record *entity.Record) RecordResponse {
	return RecordResponse{
		ID:           record.ID.String(),
		Kind:         string(record.Kind),
		Amount:       record.Amount,
		CategoryName: record.CategoryName,
		OccurredAt:   record.OccurredAt,
		Notes:        record.Notes,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

// ToRecordListResponse converts domain records to a RecordListResponse.
func ToRecordListResponse(records []*entity.Record, total int) RecordListResponse {
	responses := make([]RecordResponse, len(records))
	for i, record := range records {
		responses[i] = ToRecordResponse(record)
	}
	return RecordListResponse{
		Records: responses,
		Total:   total,
	}
}
