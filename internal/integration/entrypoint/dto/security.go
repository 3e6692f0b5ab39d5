package dto

// SecurityStatusResponse represents the gate's current state.
type SecurityStatusResponse struct {
	State        string `json:"state"`
	Enabled      bool   `json:"enabled"`
	UseBiometric bool   `json:"use_biometric"`
	UsePIN       bool   `json:"use_pin"`
}

// PINUnlockRequest represents the request body for a PIN unlock attempt.
type PINUnlockRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// UnlockResponse represents a successful unlock. Token is empty when the
// gate was already unlocked.
type UnlockResponse struct {
	State string `json:"state"`
	Token string `json:"token,omitempty"`
}

// LifecycleRequest represents a host lifecycle transition notification.
type LifecycleRequest struct {
	Event string `json:"event" binding:"required,oneof=background inactive foreground"`
}

// ConfigureLockRequest represents the request body for lock configuration.
type ConfigureLockRequest struct {
	Enabled      bool    `json:"enabled"`
	UseBiometric bool    `json:"use_biometric"`
	UsePIN       bool    `json:"use_pin"`
	Passcode     *string `json:"passcode,omitempty"`
}

// LockSettingsResponse represents the stored lock configuration.
type LockSettingsResponse struct {
	Enabled      bool `json:"enabled"`
	UseBiometric bool `json:"use_biometric"`
	UsePIN       bool `json:"use_pin"`
}
