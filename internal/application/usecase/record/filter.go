// Package record contains record-related use cases.
package record

import (
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// FilterRecords applies the filter to records as three sequential narrowing
// passes. The order is fixed and significant: time scope first, then
// category, then search. Search can only narrow what the earlier passes
// kept. The input slice is never mutated; a fresh slice is returned.
func FilterRecords(records []*entity.Record, filter entity.Filter, now time.Time) []*entity.Record {
	filtered := make([]*entity.Record, len(records))
	copy(filtered, records)

	// Time-scope pass
	switch filter.Scope {
	case entity.TimeScopeToday:
		filtered = keep(filtered, func(r *entity.Record) bool {
			return sameCalendarDay(r.OccurredAt, now)
		})
	case entity.TimeScopeCustom:
		// Without a chosen date the custom scope behaves as "all".
		if filter.CustomDate != nil {
			customDate := *filter.CustomDate
			filtered = keep(filtered, func(r *entity.Record) bool {
				return sameCalendarDay(r.OccurredAt, customDate)
			})
		}
	case entity.TimeScopeAll:
	}

	// Category pass: nil means "all categories"
	if filter.Category != nil {
		category := *filter.Category
		filtered = keep(filtered, func(r *entity.Record) bool {
			return r.CategoryName == category
		})
	}

	// Search pass: case-insensitive containment in notes or category name
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		filtered = keep(filtered, func(r *entity.Record) bool {
			return strings.Contains(strings.ToLower(r.Notes), search) ||
				strings.Contains(strings.ToLower(r.CategoryName), search)
		})
	}

	return filtered
}

// keep returns the records matching the predicate, preserving order.
func keep(records []*entity.Record, match func(*entity.Record) bool) []*entity.Record {
	kept := make([]*entity.Record, 0, len(records))
	for _, r := range records {
		if match(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// sameCalendarDay reports whether a and b fall on the same calendar day in
// b's location.
func sameCalendarDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
