package category

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
	Total      int
}

// ListCategoriesUseCase handles listing registry categories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns all registry categories ordered by name.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
		Total:      len(categories),
	}, nil
}
