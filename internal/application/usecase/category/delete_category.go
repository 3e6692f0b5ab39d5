package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for deleting a category.
type DeleteCategoryInput struct {
	ID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute removes the registry entry. Records that reference the deleted
// name keep it; their display falls back through the resolution chain.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return domainerror.ErrCategoryNotFound
	}

	if err := uc.categoryRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
