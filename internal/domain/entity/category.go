// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryEmoji is the placeholder glyph shown when a category has no
// emoji of its own.
const DefaultCategoryEmoji = "⚪️"

// Category represents a user-editable expense category in the registry.
// Income categories are not registry-backed; they remain the fixed
// IncomeCategory enumeration.
type Category struct {
	ID        uuid.UUID
	Name      string
	Emoji     string
	ColorHex  *string // nil means "no explicit color"; display falls back
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Note: trimming and emoji truncation are applied in the Application layer
// (UseCase) before calling this constructor.
func NewCategory(name, emoji string, colorHex *string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Emoji:     emoji,
		ColorHex:  colorHex,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategorySeed describes one first-run registry entry.
type CategorySeed struct {
	Name  string
	Emoji string
}

// SeedCategories is the fixed list inserted when the registry is empty.
func SeedCategories() []CategorySeed {
	return []CategorySeed{
		{Name: "Food", Emoji: "🍽️"},
		{Name: "Travel", Emoji: "🚗"},
		{Name: "Shopping", Emoji: "🛍️"},
		{Name: "Bills", Emoji: "🧾"},
		{Name: "Entertainment", Emoji: "📺"},
		{Name: "Health", Emoji: "❤️"},
		{Name: "Other", Emoji: "⚪️"},
	}
}
