// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Security SecurityConfig
	Defaults DefaultsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds record store configuration.
// The default is a local SQLite file; setting DATABASE_URL switches the
// store to PostgreSQL.
type DatabaseConfig struct {
	SQLitePath      string
	PostgresURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SessionConfig holds unlock session token configuration.
type SessionConfig struct {
	Secret string
	Expiry time.Duration
}

// SecurityConfig holds security gate configuration. BiometricAvailable
// reflects whether the host platform exposes a biometric authenticator.
type SecurityConfig struct {
	BiometricAvailable bool
}

// DefaultsConfig holds first-run defaults for user settings.
type DefaultsConfig struct {
	CurrencySymbol string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "127.0.0.1"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			SQLitePath:      getEnv("SQLITE_PATH", "expense-tracker.db"),
			PostgresURL:     getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "change-me-in-production"),
			Expiry: getEnvAsDuration("SESSION_EXPIRY", 12*time.Hour),
		},
		Security: SecurityConfig{
			BiometricAvailable: getEnvAsBool("BIOMETRIC_AVAILABLE", false),
		},
		Defaults: DefaultsConfig{
			CurrencySymbol: getEnv("DEFAULT_CURRENCY_SYMBOL", "₹"),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
