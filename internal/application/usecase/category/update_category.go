package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for updating a category.
type UpdateCategoryInput struct {
	ID       uuid.UUID
	Name     string
	Emoji    string
	ColorHex *string
}

// UpdateCategoryOutput represents the output after updating a category.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category updates.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute replaces the category's name, emoji and color. Renaming onto
// another entry's name (ignoring case) is rejected; renaming onto a cased
// variant of the entry's own name is allowed.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return nil, domainerror.ErrCategoryNotFound
	}

	name := normalizeName(input.Name)
	if name == "" {
		return nil, domainerror.ErrCategoryNameEmpty
	}
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.ErrCategoryNameTooLong
	}

	colorHex := normalizeColor(input.ColorHex)
	if colorHex != nil && !isValidHexColor(*colorHex) {
		return nil, domainerror.ErrInvalidColorFormat
	}

	if !strings.EqualFold(name, category.Name) {
		existing, err := uc.categoryRepo.FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if existing != nil {
			return nil, domainerror.ErrCategoryNameExists
		}
	}

	emoji := normalizeEmoji(input.Emoji)
	if emoji == "" {
		emoji = entity.DefaultCategoryEmoji
	}

	category.Name = name
	category.Emoji = emoji
	category.ColorHex = colorHex
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
