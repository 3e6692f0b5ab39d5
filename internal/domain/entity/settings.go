// Package entity defines the core business entities for the domain layer.
package entity

// Settings is the explicit settings context, loaded once at startup and
// passed to the components that need it instead of being read by key from
// anywhere.
type Settings struct {
	CurrencySymbol       string
	NotificationsEnabled bool
	DarkMode             bool
	Lock                 LockSettings
}
