// Package record contains record-related use cases.
package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MaxNotesLength is the maximum allowed length for record notes.
const MaxNotesLength = 1000

// CreateRecordInput represents the input for record creation.
type CreateRecordInput struct {
	Kind         entity.RecordKind
	Amount       decimal.Decimal
	CategoryName string
	OccurredAt   time.Time
	Notes        string
}

// CreateRecordOutput represents the output of record creation.
type CreateRecordOutput struct {
	Record *entity.Record
}

// CreateRecordUseCase handles record creation logic.
type CreateRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(recordRepo adapter.RecordRepository) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the record creation.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	if err := validateRecordInput(input.Kind, input.Amount, input.CategoryName, input.Notes); err != nil {
		return nil, err
	}

	record := entity.NewRecord(
		input.Kind,
		input.Amount,
		strings.TrimSpace(input.CategoryName),
		input.OccurredAt,
		input.Notes,
	)

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	return &CreateRecordOutput{
		Record: record,
	}, nil
}

// validateRecordInput enforces the entry-time invariants shared by create
// and update. Amount is never re-validated after creation.
func validateRecordInput(kind entity.RecordKind, amount decimal.Decimal, categoryName, notes string) error {
	if kind != entity.RecordKindExpense && kind != entity.RecordKindIncome {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordKind,
			"record kind must be 'expense' or 'income'",
			domainerror.ErrInvalidRecordKind,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be greater than zero",
			domainerror.ErrNonPositiveAmount,
		)
	}

	if strings.TrimSpace(categoryName) == "" {
		return domainerror.NewRecordError(
			domainerror.ErrCodeEmptyCategoryName,
			"category name cannot be empty",
			domainerror.ErrEmptyCategoryName,
		)
	}

	if len(notes) > MaxNotesLength {
		return domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			nil,
		)
	}

	return nil
}
