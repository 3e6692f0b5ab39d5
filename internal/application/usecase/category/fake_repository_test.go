package category

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// fakeCategoryRepository is an in-memory CategoryRepository for tests.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	clone := *category
	return &clone, nil
}

func (r *fakeCategoryRepository) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, category := range r.categories {
		if strings.EqualFold(category.Name, name) {
			clone := *category
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepository) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, category := range r.categories {
		clone := *category
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}
