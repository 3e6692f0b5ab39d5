// Package mock provides shared test infrastructure for integration tests.
package mock

import (
	"fmt"
	"sync"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

var once sync.Once
var shared *Db
var openErr error

// Db wraps a process-wide in-memory SQLite store for the test suite.
// Scenarios share the connection and call Reset between runs.
type Db struct {
	Database *db.Database
}

// NewDb opens the shared in-memory database on first call and migrates the
// schema. Subsequent calls return the same instance.
func NewDb() (*Db, error) {
	once.Do(func() {
		cfg := config.DatabaseConfig{
			// cache=shared keeps the single in-memory store visible to
			// every connection in the pool.
			SQLitePath:   "file::memory:?cache=shared",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		}

		database, err := db.NewConnection(&cfg)
		if err != nil {
			openErr = fmt.Errorf("failed to open test database: %w", err)
			return
		}

		if err := database.AutoMigrate(
			&model.RecordModel{},
			&model.CategoryModel{},
			&model.SettingModel{},
			&model.SecretModel{},
		); err != nil {
			openErr = fmt.Errorf("failed to migrate test database: %w", err)
			return
		}

		shared = &Db{Database: database}
	})

	if openErr != nil {
		return nil, openErr
	}
	return shared, nil
}

// Reset wipes all tables so each scenario starts from a clean store.
func (d *Db) Reset() error {
	for _, table := range []string{"records", "categories", "settings", "secrets"} {
		if err := d.Database.DB().Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}
