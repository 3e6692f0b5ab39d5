// Package statistics contains the aggregate statistics engine.
package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/record"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetStatisticsInput represents the input for a statistics query.
type GetStatisticsInput struct {
	Kind   entity.RecordKind
	Filter entity.Filter
	// Now anchors "today"; the zero value means time.Now().
	Now time.Time
}

// GetStatisticsOutput carries both snapshots the screens render: one over
// the full record set and one over the currently visible subset.
type GetStatisticsOutput struct {
	Full     entity.Statistics
	Filtered entity.Statistics
}

// GetStatisticsUseCase handles statistics queries.
type GetStatisticsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase instance.
func NewGetStatisticsUseCase(recordRepo adapter.RecordRepository) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute fetches the kind's records and computes both snapshots. When the
// filter's time scope is custom with a chosen date, that date becomes the
// reference date so the header totals align with the selected period.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, input GetStatisticsInput) (*GetStatisticsOutput, error) {
	records, err := uc.recordRepo.ListByKind(ctx, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	referenceDate := now
	if input.Filter.Scope == entity.TimeScopeCustom && input.Filter.CustomDate != nil {
		referenceDate = *input.Filter.CustomDate
	}

	filtered := record.FilterRecords(records, input.Filter, now)

	return &GetStatisticsOutput{
		Full:     Compute(records, referenceDate, input.Kind),
		Filtered: Compute(filtered, referenceDate, input.Kind),
	}, nil
}
