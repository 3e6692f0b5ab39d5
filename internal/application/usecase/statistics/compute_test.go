// Package statistics contains the aggregate statistics engine.
package statistics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func expense(amount string, category string, occurredAt time.Time) *entity.Record {
	return entity.NewRecord(
		entity.RecordKindExpense,
		decimal.RequireFromString(amount),
		category,
		occurredAt,
		"",
	)
}

func TestCompute_EmptyInput(t *testing.T) {
	ref := time.Date(2025, 8, 18, 12, 0, 0, 0, time.Local)

	stats := Compute(nil, ref, entity.RecordKindExpense)

	if !stats.TotalToday.IsZero() || !stats.TotalThisWeek.IsZero() || !stats.TotalThisMonth.IsZero() {
		t.Errorf("expected all-zero totals, got today=%s week=%s month=%s",
			stats.TotalToday, stats.TotalThisWeek, stats.TotalThisMonth)
	}

	for _, category := range entity.AllExpenseCategories() {
		sum, ok := stats.Breakdown[string(category)]
		if !ok {
			t.Errorf("expected breakdown entry for %s", category)
			continue
		}
		if !sum.IsZero() {
			t.Errorf("expected zero breakdown for %s, got %s", category, sum)
		}
	}
}

func TestCompute_TodayTotal(t *testing.T) {
	// 2025-08-18 is a Monday.
	ref := time.Date(2025, 8, 18, 15, 0, 0, 0, time.Local)
	records := []*entity.Record{
		expense("25.50", "Food", time.Date(2025, 8, 18, 0, 0, 0, 0, time.Local)),
		expense("10.00", "Food", time.Date(2025, 8, 18, 23, 59, 59, 0, time.Local)),
		expense("99.00", "Food", time.Date(2025, 8, 17, 23, 59, 59, 0, time.Local)),
	}

	stats := Compute(records, ref, entity.RecordKindExpense)

	want := decimal.RequireFromString("35.50")
	if !stats.TotalToday.Equal(want) {
		t.Errorf("expected totalToday %s, got %s", want, stats.TotalToday)
	}
}

func TestCompute_WeekBoundary(t *testing.T) {
	// Thursday; the containing ISO week starts Monday 2025-08-18 00:00:00.
	ref := time.Date(2025, 8, 21, 10, 0, 0, 0, time.Local)
	weekStart := time.Date(2025, 8, 18, 0, 0, 0, 0, time.Local)

	records := []*entity.Record{
		expense("10.00", "Food", weekStart),                                    // exactly at week start
		expense("20.00", "Food", weekStart.Add(-time.Second)),                  // one second before
		expense("40.00", "Food", weekStart.AddDate(0, 0, 7).Add(-time.Second)), // last instant of week
		expense("80.00", "Food", weekStart.AddDate(0, 0, 7)),                   // first instant of next week
	}

	stats := Compute(records, ref, entity.RecordKindExpense)

	want := decimal.RequireFromString("50.00")
	if !stats.TotalThisWeek.Equal(want) {
		t.Errorf("expected totalThisWeek %s, got %s", want, stats.TotalThisWeek)
	}
}

func TestCompute_MonthBoundary(t *testing.T) {
	ref := time.Date(2025, 8, 15, 0, 0, 0, 0, time.Local)
	lastInstantOfJuly := time.Date(2025, 7, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.Local)

	records := []*entity.Record{
		expense("10.00", "Bills", lastInstantOfJuly),
		expense("20.00", "Bills", time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local)),
		expense("40.00", "Bills", time.Date(2025, 8, 31, 23, 59, 59, 0, time.Local)),
		expense("80.00", "Bills", time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local)),
	}

	augustStats := Compute(records, ref, entity.RecordKindExpense)
	julyStats := Compute(records, time.Date(2025, 7, 15, 0, 0, 0, 0, time.Local), entity.RecordKindExpense)

	wantAugust := decimal.RequireFromString("60.00")
	if !augustStats.TotalThisMonth.Equal(wantAugust) {
		t.Errorf("expected August total %s, got %s", wantAugust, augustStats.TotalThisMonth)
	}

	// The last instant of July belongs to July, not August.
	wantJuly := decimal.RequireFromString("10.00")
	if !julyStats.TotalThisMonth.Equal(wantJuly) {
		t.Errorf("expected July total %s, got %s", wantJuly, julyStats.TotalThisMonth)
	}
}

// Additivity: totals over the union of disjoint sets equal the sum of the
// totals computed separately.
func TestCompute_Additivity(t *testing.T) {
	ref := time.Date(2025, 8, 18, 12, 0, 0, 0, time.Local)
	setA := []*entity.Record{
		expense("10.00", "Food", ref),
		expense("5.25", "Travel", ref.Add(-time.Hour)),
	}
	setB := []*entity.Record{
		expense("7.75", "Food", ref.Add(2*time.Hour)),
	}
	union := append(append([]*entity.Record{}, setA...), setB...)

	statsA := Compute(setA, ref, entity.RecordKindExpense)
	statsB := Compute(setB, ref, entity.RecordKindExpense)
	statsUnion := Compute(union, ref, entity.RecordKindExpense)

	if !statsA.TotalToday.Add(statsB.TotalToday).Equal(statsUnion.TotalToday) {
		t.Errorf("today totals not additive: %s + %s != %s",
			statsA.TotalToday, statsB.TotalToday, statsUnion.TotalToday)
	}
	if !statsA.TotalThisWeek.Add(statsB.TotalThisWeek).Equal(statsUnion.TotalThisWeek) {
		t.Errorf("week totals not additive: %s + %s != %s",
			statsA.TotalThisWeek, statsB.TotalThisWeek, statsUnion.TotalThisWeek)
	}
	for _, category := range entity.AllExpenseCategories() {
		name := string(category)
		if !statsA.Breakdown[name].Add(statsB.Breakdown[name]).Equal(statsUnion.Breakdown[name]) {
			t.Errorf("breakdown for %s not additive", name)
		}
	}
}

func TestCompute_CustomCategoryInvisibleToBreakdown(t *testing.T) {
	ref := time.Date(2025, 8, 18, 12, 0, 0, 0, time.Local)
	records := []*entity.Record{
		expense("30.00", "Subscriptions", ref), // not in the fixed enumeration
		expense("12.00", "Food", ref),
	}

	stats := Compute(records, ref, entity.RecordKindExpense)

	// Totals still count the custom-category record.
	wantToday := decimal.RequireFromString("42.00")
	if !stats.TotalToday.Equal(wantToday) {
		t.Errorf("expected totalToday %s, got %s", wantToday, stats.TotalToday)
	}

	if _, ok := stats.Breakdown["Subscriptions"]; ok {
		t.Error("expected custom category to be absent from the breakdown")
	}
	if !stats.Breakdown["Food"].Equal(decimal.RequireFromString("12.00")) {
		t.Errorf("expected Food breakdown 12.00, got %s", stats.Breakdown["Food"])
	}
}

func TestCompute_IncomeBreakdownUsesIncomeEnumeration(t *testing.T) {
	ref := time.Date(2025, 8, 18, 12, 0, 0, 0, time.Local)
	records := []*entity.Record{
		entity.NewRecord(entity.RecordKindIncome, decimal.RequireFromString("5000.00"), "Salary", ref, "monthly"),
	}

	stats := Compute(records, ref, entity.RecordKindIncome)

	if !stats.Breakdown["Salary"].Equal(decimal.RequireFromString("5000.00")) {
		t.Errorf("expected Salary breakdown 5000.00, got %s", stats.Breakdown["Salary"])
	}
	if _, ok := stats.Breakdown["Food"]; ok {
		t.Error("expected expense enumeration members to be absent from income breakdown")
	}
	for _, category := range entity.AllIncomeCategories() {
		if _, ok := stats.Breakdown[string(category)]; !ok {
			t.Errorf("expected breakdown entry for %s", category)
		}
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			date: time.Date(2025, 8, 18, 13, 45, 0, 0, time.Local),
			want: time.Date(2025, 8, 18, 0, 0, 0, 0, time.Local),
		},
		{
			name: "sunday maps to the preceding monday",
			date: time.Date(2025, 8, 24, 1, 0, 0, 0, time.Local),
			want: time.Date(2025, 8, 18, 0, 0, 0, 0, time.Local),
		},
		{
			name: "week start across a month boundary",
			date: time.Date(2025, 7, 2, 8, 0, 0, 0, time.Local),
			want: time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.date); !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
