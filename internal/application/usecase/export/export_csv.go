package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CSVFilename is the suggested download filename for CSV exports.
const CSVFilename = "expense-report.csv"

// ExportCSVInput represents the input for a CSV export.
type ExportCSVInput struct {
	CurrencySymbol string
}

// ExportCSVOutput carries the rendered document.
type ExportCSVOutput struct {
	Data     []byte
	Filename string
}

// ExportCSVUseCase renders every record as an RFC 4180 CSV document:
// a fixed header, then all expenses, then all income.
type ExportCSVUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(recordRepo adapter.RecordRepository) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		recordRepo: recordRepo,
	}
}

// Execute renders the CSV. Quoting and escaping follow encoding/csv, so
// notes containing commas, quotes or newlines survive a round trip.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) (*ExportCSVOutput, error) {
	expenses, err := uc.recordRepo.ListByKind(ctx, entity.RecordKindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	income, err := uc.recordRepo.ListByKind(ctx, entity.RecordKindIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Type", "Date", "Category", "Amount", "Notes"}); err != nil {
		return nil, domainerror.NewExportError(domainerror.ErrCodeExportWriteFailed, "failed to write csv header", err)
	}
	for _, r := range expenses {
		if err := writer.Write(csvRow("Expense", r, input.CurrencySymbol)); err != nil {
			return nil, domainerror.NewExportError(domainerror.ErrCodeExportWriteFailed, "failed to write csv row", err)
		}
	}
	for _, r := range income {
		if err := writer.Write(csvRow("Income", r, input.CurrencySymbol)); err != nil {
			return nil, domainerror.NewExportError(domainerror.ErrCodeExportWriteFailed, "failed to write csv row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, domainerror.NewExportError(domainerror.ErrCodeExportWriteFailed, "failed to flush csv", err)
	}

	return &ExportCSVOutput{Data: buf.Bytes(), Filename: CSVFilename}, nil
}

func csvRow(kind string, r *entity.Record, symbol string) []string {
	return []string{
		kind,
		formatDate(r.OccurredAt),
		r.CategoryName,
		formatAmount(symbol, r.Amount),
		r.Notes,
	}
}
