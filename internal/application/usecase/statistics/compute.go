// Package statistics contains the aggregate statistics engine.
package statistics

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// Compute builds a statistics snapshot over records relative to
// referenceDate. It is a pure function of its inputs: no side effects, no
// error conditions, and an empty input yields all zeros.
//
// Windows, all in referenceDate's location:
//   - today: the calendar day containing referenceDate
//   - week:  [Monday 00:00 of the ISO week, +7 days); the start instant is
//     included, one second before it is not
//   - month: [first of month, first of next month)
//
// The breakdown covers exactly the kind's fixed enumeration; records whose
// category name matches no member contribute to the totals but not to the
// breakdown.
func Compute(records []*entity.Record, referenceDate time.Time, kind entity.RecordKind) entity.Statistics {
	stats := entity.EmptyStatistics(enumeratedNames(kind))

	weekStart := WeekStart(referenceDate)
	weekEnd := weekStart.AddDate(0, 0, 7)
	monthStart := MonthStart(referenceDate)
	monthEnd := monthStart.AddDate(0, 1, 0)

	for _, r := range records {
		if SameCalendarDay(r.OccurredAt, referenceDate) {
			stats.TotalToday = stats.TotalToday.Add(r.Amount)
		}
		if !r.OccurredAt.Before(weekStart) && r.OccurredAt.Before(weekEnd) {
			stats.TotalThisWeek = stats.TotalThisWeek.Add(r.Amount)
		}
		if !r.OccurredAt.Before(monthStart) && r.OccurredAt.Before(monthEnd) {
			stats.TotalThisMonth = stats.TotalThisMonth.Add(r.Amount)
		}
		if sum, ok := stats.Breakdown[r.CategoryName]; ok {
			stats.Breakdown[r.CategoryName] = sum.Add(r.Amount)
		}
	}

	return stats
}

// enumeratedNames returns the fixed enumeration for the record kind.
func enumeratedNames(kind entity.RecordKind) []string {
	if kind == entity.RecordKindIncome {
		categories := entity.AllIncomeCategories()
		names := make([]string, len(categories))
		for i, c := range categories {
			names[i] = string(c)
		}
		return names
	}

	categories := entity.AllExpenseCategories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}

// Zero is a convenience wrapper for an all-zero snapshot of the kind.
func Zero(kind entity.RecordKind) entity.Statistics {
	return entity.EmptyStatistics(enumeratedNames(kind))
}
