package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/settings"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles settings endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PUT /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), settings.UpdateSettingsInput{
		CurrencySymbol:       req.CurrencySymbol,
		NotificationsEnabled: req.NotificationsEnabled,
		DarkMode:             req.DarkMode,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to save settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}
