// Package record contains record-related use cases.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// DeleteRecordInput represents the input for record deletion.
type DeleteRecordInput struct {
	RecordID uuid.UUID
}

// DeleteRecordOutput represents the output of record deletion.
type DeleteRecordOutput struct{}

// DeleteRecordUseCase handles record deletion logic.
type DeleteRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(recordRepo adapter.RecordRepository) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the record deletion.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) (*DeleteRecordOutput, error) {
	if _, err := uc.recordRepo.FindByID(ctx, input.RecordID); err != nil {
		return nil, err
	}

	if err := uc.recordRepo.Delete(ctx, input.RecordID); err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}

	return &DeleteRecordOutput{}, nil
}
