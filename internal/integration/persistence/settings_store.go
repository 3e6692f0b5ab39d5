package persistence

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// Settings keys. One row per key; unset keys fall back to defaults on load.
const (
	settingCurrencySymbol       = "currencySymbol"
	settingNotificationsEnabled = "notificationsEnabled"
	settingDarkMode             = "darkMode"
	settingAppLockEnabled       = "appLockEnabled"
	settingUseBiometric         = "useBiometric"
	settingUsePIN               = "usePIN"
)

// settingsStore implements the adapter.SettingsStore interface over the
// key-value settings table.
type settingsStore struct {
	db *gorm.DB
}

// NewSettingsStore creates a new settings store instance.
func NewSettingsStore(db *gorm.DB) adapter.SettingsStore {
	return &settingsStore{
		db: db,
	}
}

// Load reads all settings rows and overlays them on the defaults.
func (s *settingsStore) Load(ctx context.Context, defaults entity.Settings) (entity.Settings, error) {
	var rows []model.SettingModel
	result := s.db.WithContext(ctx).Find(&rows)
	if result.Error != nil {
		return entity.Settings{}, result.Error
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	settings := defaults
	if v, ok := values[settingCurrencySymbol]; ok {
		settings.CurrencySymbol = v
	}
	settings.NotificationsEnabled = boolValue(values, settingNotificationsEnabled, defaults.NotificationsEnabled)
	settings.DarkMode = boolValue(values, settingDarkMode, defaults.DarkMode)
	settings.Lock.Enabled = boolValue(values, settingAppLockEnabled, defaults.Lock.Enabled)
	settings.Lock.UseBiometric = boolValue(values, settingUseBiometric, defaults.Lock.UseBiometric)
	settings.Lock.UsePIN = boolValue(values, settingUsePIN, defaults.Lock.UsePIN)

	return settings, nil
}

// Save upserts every settings key.
func (s *settingsStore) Save(ctx context.Context, settings entity.Settings) error {
	now := time.Now().UTC()
	rows := []model.SettingModel{
		{Key: settingCurrencySymbol, Value: settings.CurrencySymbol, UpdatedAt: now},
		{Key: settingNotificationsEnabled, Value: strconv.FormatBool(settings.NotificationsEnabled), UpdatedAt: now},
		{Key: settingDarkMode, Value: strconv.FormatBool(settings.DarkMode), UpdatedAt: now},
		{Key: settingAppLockEnabled, Value: strconv.FormatBool(settings.Lock.Enabled), UpdatedAt: now},
		{Key: settingUseBiometric, Value: strconv.FormatBool(settings.Lock.UseBiometric), UpdatedAt: now},
		{Key: settingUsePIN, Value: strconv.FormatBool(settings.Lock.UsePIN), UpdatedAt: now},
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rows)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func boolValue(values map[string]string, key string, fallback bool) bool {
	raw, ok := values[key]
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
