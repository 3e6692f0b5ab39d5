// Package record contains record-related use cases.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListRecordsInput represents the input for listing records of one kind.
// The filter defaults to "everything visible".
type ListRecordsInput struct {
	Kind   entity.RecordKind
	Filter entity.Filter
	// Now anchors the "today" scope; the zero value means time.Now().
	Now time.Time
}

// ListRecordsOutput represents the output of listing records.
// Records holds the visible (filtered) subset; Total is the size of the
// unfiltered set.
type ListRecordsOutput struct {
	Records []*entity.Record
	Total   int
}

// ListRecordsUseCase handles record listing with filtering.
type ListRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.RecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute fetches the kind's records (newest first) and applies the filter.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	records, err := uc.recordRepo.ListByKind(ctx, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	return &ListRecordsOutput{
		Records: FilterRecords(records, input.Filter, now),
		Total:   len(records),
	}, nil
}
