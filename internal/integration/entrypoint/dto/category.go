package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=50"`
	Emoji    string  `json:"emoji,omitempty"`
	ColorHex *string `json:"color_hex,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=50"`
	Emoji    string  `json:"emoji,omitempty"`
	ColorHex *string `json:"color_hex,omitempty"`
}

// CategoryResponse represents a single registry category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	ColorHex  *string   `json:"color_hex,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// DisplayResponse represents the resolved display for a category name.
type DisplayResponse struct {
	Emoji string `json:"emoji"`
	Tint  string `json:"tint"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Emoji:     category.Emoji,
		ColorHex:  category.ColorHex,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryListResponse converts domain categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category, total int) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{
		Categories: responses,
		Total:      total,
	}
}
