// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Statistics is an immutable aggregate snapshot over a record list, relative
// to a reference date. It is recomputed on every query and never persisted.
//
// Breakdown is keyed by the members of the kind's fixed enumeration; records
// whose category name matches no member are invisible to it. That limitation
// is deliberate and matches the chart the snapshot feeds.
type Statistics struct {
	TotalToday     decimal.Decimal
	TotalThisWeek  decimal.Decimal
	TotalThisMonth decimal.Decimal
	Breakdown      map[string]decimal.Decimal
}

// EmptyStatistics returns an all-zero snapshot with a zero Breakdown entry
// for every name in categories.
func EmptyStatistics(categories []string) Statistics {
	breakdown := make(map[string]decimal.Decimal, len(categories))
	for _, name := range categories {
		breakdown[name] = decimal.Zero
	}
	return Statistics{
		TotalToday:     decimal.Zero,
		TotalThisWeek:  decimal.Zero,
		TotalThisMonth: decimal.Zero,
		Breakdown:      breakdown,
	}
}
