// Package record contains record-related use cases.
package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UpdateRecordInput represents the input for record update. The edit is a
// full replace of amount, category, date and notes.
type UpdateRecordInput struct {
	RecordID     uuid.UUID
	Amount       decimal.Decimal
	CategoryName string
	OccurredAt   time.Time
	Notes        string
}

// UpdateRecordOutput represents the output of record update.
type UpdateRecordOutput struct {
	Record *entity.Record
}

// UpdateRecordUseCase handles record update logic.
type UpdateRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(recordRepo adapter.RecordRepository) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the record update.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
	record, err := uc.recordRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		return nil, err
	}

	if err := validateRecordInput(record.Kind, input.Amount, input.CategoryName, input.Notes); err != nil {
		return nil, err
	}

	record.Amount = input.Amount
	record.CategoryName = strings.TrimSpace(input.CategoryName)
	record.OccurredAt = input.OccurredAt
	record.Notes = input.Notes
	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	return &UpdateRecordOutput{
		Record: record,
	}, nil
}
