// Package adapter defines interfaces for external dependencies.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SettingsStore defines the interface for ordinary key-value settings
// persistence. Load fills unset keys with the provided defaults.
type SettingsStore interface {
	Load(ctx context.Context, defaults entity.Settings) (entity.Settings, error)
	Save(ctx context.Context, settings entity.Settings) error
}
