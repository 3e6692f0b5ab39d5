package category

import (
	"context"
	"errors"
	"testing"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateCategory_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateCategoryInput
		wantErr error
	}{
		{
			name:    "blank name after trimming",
			input:   CreateCategoryInput{Name: "   "},
			wantErr: domainerror.ErrCategoryNameEmpty,
		},
		{
			name:    "name too long",
			input:   CreateCategoryInput{Name: "this category name is far far far too long to be stored"},
			wantErr: domainerror.ErrCategoryNameTooLong,
		},
		{
			name:    "malformed color",
			input:   CreateCategoryInput{Name: "Pets", ColorHex: strPtr("red")},
			wantErr: domainerror.ErrInvalidColorFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateCategoryUseCase(newFakeCategoryRepository())
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateCategory_TrimsAndDefaults(t *testing.T) {
	repo := newFakeCategoryRepository()
	uc := NewCreateCategoryUseCase(repo)

	out, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "  Pets  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category.Name != "Pets" {
		t.Errorf("expected trimmed name Pets, got %q", out.Category.Name)
	}
	if out.Category.Emoji != entity.DefaultCategoryEmoji {
		t.Errorf("expected default emoji, got %q", out.Category.Emoji)
	}
	if out.Category.ColorHex != nil {
		t.Errorf("expected nil color, got %q", *out.Category.ColorHex)
	}
}

func TestCreateCategory_TruncatesEmojiToOneGlyph(t *testing.T) {
	repo := newFakeCategoryRepository()
	uc := NewCreateCategoryUseCase(repo)

	out, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "Pets", Emoji: "🐶🐱"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category.Emoji != "🐶" {
		t.Errorf("expected single glyph 🐶, got %q", out.Category.Emoji)
	}
}

func TestCreateCategory_DuplicateNameIgnoresCase(t *testing.T) {
	repo := newFakeCategoryRepository()
	uc := NewCreateCategoryUseCase(repo)

	if _, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "Pets"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "pets"})
	if !errors.Is(err, domainerror.ErrCategoryNameExists) {
		t.Errorf("expected duplicate name error, got %v", err)
	}
}

func TestUpdateCategory_AllowsOwnCasedRename(t *testing.T) {
	repo := newFakeCategoryRepository()
	created, err := NewCreateCategoryUseCase(repo).Execute(context.Background(), CreateCategoryInput{Name: "Pets", Emoji: "🐶"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
		ID:       created.Category.ID,
		Name:     "PETS",
		Emoji:    "🐶",
		ColorHex: strPtr("#FF453A"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category.Name != "PETS" {
		t.Errorf("expected renamed category, got %q", out.Category.Name)
	}
	if out.Category.ColorHex == nil || *out.Category.ColorHex != "#FF453A" {
		t.Error("expected explicit color to be stored")
	}
}

func TestUpdateCategory_RejectsRenameOntoOtherEntry(t *testing.T) {
	repo := newFakeCategoryRepository()
	createUC := NewCreateCategoryUseCase(repo)
	if _, err := createUC.Execute(context.Background(), CreateCategoryInput{Name: "Pets"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, err := createUC.Execute(context.Background(), CreateCategoryInput{Name: "Garden"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
		ID:   other.Category.ID,
		Name: "pets",
	})
	if !errors.Is(err, domainerror.ErrCategoryNameExists) {
		t.Errorf("expected duplicate name error, got %v", err)
	}
}

func TestDeleteCategory_MissingEntry(t *testing.T) {
	repo := newFakeCategoryRepository()
	created, err := NewCreateCategoryUseCase(repo).Execute(context.Background(), CreateCategoryInput{Name: "Pets"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewDeleteCategoryUseCase(repo)
	if err := uc.Execute(context.Background(), DeleteCategoryInput{ID: created.Category.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = uc.Execute(context.Background(), DeleteCategoryInput{ID: created.Category.ID})
	if !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestSeedCategories_OnlyWhenEmpty(t *testing.T) {
	repo := newFakeCategoryRepository()
	uc := NewSeedCategoriesUseCase(repo)

	if err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listed, err := NewListCategoriesUseCase(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listed.Total != len(entity.SeedCategories()) {
		t.Fatalf("expected %d seeded categories, got %d", len(entity.SeedCategories()), listed.Total)
	}

	// Re-running against a non-empty registry adds nothing.
	if err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := NewListCategoriesUseCase(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Total != listed.Total {
		t.Errorf("expected count to stay %d, got %d", listed.Total, again.Total)
	}
}
