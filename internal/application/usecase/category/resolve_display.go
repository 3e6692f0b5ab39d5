package category

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// Display is the resolved presentation of a category name: the glyph shown
// next to the row and the tint applied to it.
type Display struct {
	Emoji string
	// Tint is a hex color, or TintNone when the row should use the default
	// text color. Light mode always resolves to TintNone.
	Tint string
}

// ResolveDisplayInput represents the input for a display resolution.
type ResolveDisplayInput struct {
	CategoryName string
	Kind         entity.RecordKind
	DarkMode     bool
}

// ResolveDisplayUseCase resolves a record's category name to its emoji and
// tint. Expense names consult the editable registry first and fall back to
// the fixed enumeration; income names resolve against their enumeration
// directly.
type ResolveDisplayUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewResolveDisplayUseCase creates a new ResolveDisplayUseCase instance.
func NewResolveDisplayUseCase(categoryRepo adapter.CategoryRepository) *ResolveDisplayUseCase {
	return &ResolveDisplayUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute resolves the display for a category name. The registry lookup
// ignores case, so "food" and "Food" resolve identically. The tint chain for
// a registry hit is: explicit color, then the emoji inference table, then the
// enumeration fallback for the name.
func (uc *ResolveDisplayUseCase) Execute(ctx context.Context, input ResolveDisplayInput) (Display, error) {
	if input.Kind == entity.RecordKindIncome {
		return incomeDisplay(input.CategoryName, input.DarkMode), nil
	}

	registry, err := uc.categoryRepo.FindByName(ctx, input.CategoryName)
	if err != nil {
		return Display{}, fmt.Errorf("failed to look up category: %w", err)
	}

	fallback := entity.ExpenseCategoryFromName(input.CategoryName)

	if registry == nil {
		display := Display{Emoji: fallback.Emoji(), Tint: entity.TintNone}
		if input.DarkMode {
			display.Tint = fallback.DarkTint()
		}
		return display, nil
	}

	emoji := registry.Emoji
	if emoji == "" {
		emoji = entity.DefaultCategoryEmoji
	}

	display := Display{Emoji: emoji, Tint: entity.TintNone}
	if !input.DarkMode {
		return display, nil
	}

	switch {
	case registry.ColorHex != nil:
		display.Tint = *registry.ColorHex
	case darkTintForEmoji(emoji) != entity.TintNone:
		display.Tint = darkTintForEmoji(emoji)
	default:
		display.Tint = fallback.DarkTint()
	}

	return display, nil
}

// incomeDisplay resolves an income category name against the fixed
// enumeration; there is no registry for income.
func incomeDisplay(name string, darkMode bool) Display {
	category := entity.IncomeCategoryFromName(name)
	display := Display{Emoji: category.Emoji(), Tint: entity.TintNone}
	if darkMode {
		display.Tint = category.DarkTint()
	}
	return display
}
