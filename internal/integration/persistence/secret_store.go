package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// secretStore implements the adapter.SecretStore interface over the secrets
// table.
type secretStore struct {
	db *gorm.DB
}

// NewSecretStore creates a new secret store instance.
func NewSecretStore(db *gorm.DB) adapter.SecretStore {
	return &secretStore{
		db: db,
	}
}

// Save upserts a secret value under the given key.
func (s *secretStore) Save(ctx context.Context, key, value string) error {
	row := model.SecretModel{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Load retrieves a secret value; an unset key yields ("", nil).
func (s *secretStore) Load(ctx context.Context, key string) (string, error) {
	var row model.SecretModel
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return row.Value, nil
}

// Delete removes a secret. Deleting an unset key is not an error.
func (s *secretStore) Delete(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Delete(&model.SecretModel{}, "key = ?", key)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
