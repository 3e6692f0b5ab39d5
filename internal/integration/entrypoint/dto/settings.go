package dto

import "github.com/expense-tracker/backend/internal/domain/entity"

// UpdateSettingsRequest represents the request body for a settings update.
// Lock configuration is managed through the security endpoints.
type UpdateSettingsRequest struct {
	CurrencySymbol       string `json:"currency_symbol"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	DarkMode             bool   `json:"dark_mode"`
}

// SettingsResponse represents the settings context in API responses.
type SettingsResponse struct {
	CurrencySymbol       string               `json:"currency_symbol"`
	NotificationsEnabled bool                 `json:"notifications_enabled"`
	DarkMode             bool                 `json:"dark_mode"`
	Lock                 LockSettingsResponse `json:"lock"`
}

// ToSettingsResponse converts a domain Settings value to its DTO.
func ToSettingsResponse(settings entity.Settings) SettingsResponse {
	return SettingsResponse{
		CurrencySymbol:       settings.CurrencySymbol,
		NotificationsEnabled: settings.NotificationsEnabled,
		DarkMode:             settings.DarkMode,
		Lock: LockSettingsResponse{
			Enabled:      settings.Lock.Enabled,
			UseBiometric: settings.Lock.UseBiometric,
			UsePIN:       settings.Lock.UsePIN,
		},
	}
}
