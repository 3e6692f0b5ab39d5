package category

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SeedCategoriesUseCase inserts the default registry entries on first run.
type SeedCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedCategoriesUseCase creates a new SeedCategoriesUseCase instance.
func NewSeedCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the registry with the default categories if and only if the
// registry is empty. A registry the user emptied on purpose stays empty only
// until the next run; seeding keys off the count, not a first-run marker.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context) error {
	count, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, seed := range entity.SeedCategories() {
		category := entity.NewCategory(seed.Name, seed.Emoji, nil)
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", seed.Name, err)
		}
	}

	return nil
}
