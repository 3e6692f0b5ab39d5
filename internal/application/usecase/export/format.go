// Package export renders the full record set as CSV and PDF documents.
package export

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// exportDateLayout renders e.g. "8/18/2025, 3:04 PM".
const exportDateLayout = "1/2/2006, 3:04 PM"

func formatDate(t time.Time) string {
	return t.Format(exportDateLayout)
}

// formatAmount prefixes the configured currency symbol and fixes two
// decimal places.
func formatAmount(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

func sumAmounts(records []*entity.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}
