// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// TimeScope narrows a record list to a calendar window.
type TimeScope string

const (
	TimeScopeAll    TimeScope = "all"
	TimeScopeToday  TimeScope = "today"
	TimeScopeCustom TimeScope = "custom"
)

// Filter is the transient per-screen filter state.
// Category is an explicit optional: nil means "all categories", so a literal
// "Other" selection is representable and distinguishable from no filter.
type Filter struct {
	Scope      TimeScope
	Category   *string
	Search     string
	CustomDate *time.Time
}

// NewFilter returns the default filter state (everything visible).
func NewFilter() Filter {
	return Filter{Scope: TimeScopeAll}
}

// IsZero reports whether the filter narrows nothing.
func (f Filter) IsZero() bool {
	return f.Scope == TimeScopeAll && f.Category == nil && f.Search == "" && f.CustomDate == nil
}
