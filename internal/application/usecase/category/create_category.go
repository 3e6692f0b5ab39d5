package category

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for creating a category.
type CreateCategoryInput struct {
	Name     string
	Emoji    string
	ColorHex *string
}

// CreateCategoryOutput represents the output after creating a category.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute validates the input and persists a new registry entry. Names are
// unique ignoring case; the emoji is truncated to a single visible character.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
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

	existing, err := uc.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		return nil, domainerror.ErrCategoryNameExists
	}

	emoji := normalizeEmoji(input.Emoji)
	if emoji == "" {
		emoji = entity.DefaultCategoryEmoji
	}

	category := entity.NewCategory(name, emoji, colorHex)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
