// Package entity defines the core business entities for the domain layer.
package entity

// LockState is the security gate's binary state. While Locked the rest of
// the application must not be reachable; no data is affected either way.
type LockState string

const (
	LockStateLocked   LockState = "locked"
	LockStateUnlocked LockState = "unlocked"
)

// LockSettings holds the persisted app-lock configuration. The passcode
// itself lives in the secret store, not here.
type LockSettings struct {
	Enabled      bool
	UseBiometric bool
	UsePIN       bool
}

// LifecycleEvent is a host application lifecycle transition relevant to the
// security gate.
type LifecycleEvent string

const (
	LifecycleBackground LifecycleEvent = "background"
	LifecycleInactive   LifecycleEvent = "inactive"
	LifecycleForeground LifecycleEvent = "foreground"
)
