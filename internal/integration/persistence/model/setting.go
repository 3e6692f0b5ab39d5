package model

import "time"

// SettingModel represents the settings key-value table in the database.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}

// SecretModel represents the secrets table. Secrets are stored apart from
// ordinary settings so a settings dump never includes them.
type SecretModel struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SecretModel.
func (SecretModel) TableName() string {
	return "secrets"
}
