package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/category"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category registry endpoints.
type CategoryController struct {
	listUseCase    *category.ListCategoriesUseCase
	createUseCase  *category.CreateCategoryUseCase
	updateUseCase  *category.UpdateCategoryUseCase
	deleteUseCase  *category.DeleteCategoryUseCase
	resolveUseCase *category.ResolveDisplayUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	resolveUseCase *category.ResolveDisplayUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		resolveUseCase: resolveUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories, output.Total))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCategoryNameEmpty),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name:     req.Name,
		Emoji:    req.Emoji,
		ColorHex: req.ColorHex,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCategoryNameEmpty),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		ID:       categoryID,
		Name:     req.Name,
		Emoji:    req.Emoji,
		ColorHex: req.ColorHex,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{ID: categoryID}); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ResolveDisplay handles GET /categories/display requests. It resolves a
// category name to the emoji and tint a client should render.
func (c *CategoryController) ResolveDisplay(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Category name is required",
		})
		return
	}

	kind, ok := parseRecordKind(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record kind",
			Code:  string(domainerror.ErrCodeInvalidRecordKind),
		})
		return
	}

	display, err := c.resolveUseCase.Execute(ctx.Request.Context(), category.ResolveDisplayInput{
		CategoryName: name,
		Kind:         kind,
		DarkMode:     ctx.Query("dark_mode") == "true",
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to resolve category display",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.DisplayResponse{Emoji: display.Emoji, Tint: display.Tint})
}

// handleCategoryError maps category errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrCategoryNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
	case errors.Is(err, domainerror.ErrCategoryNameExists):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeCategoryNameExists),
		})
	case errors.Is(err, domainerror.ErrCategoryNameEmpty):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeCategoryNameEmpty),
		})
	case errors.Is(err, domainerror.ErrCategoryNameTooLong):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeCategoryNameTooLong),
		})
	case errors.Is(err, domainerror.ErrInvalidColorFormat):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidColorFormat),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
