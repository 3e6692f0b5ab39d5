package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/export"
	"github.com/expense-tracker/backend/internal/application/usecase/settings"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ExportController handles export endpoints. The currency symbol on the
// rendered documents comes from the stored settings.
type ExportController struct {
	csvUseCase      *export.ExportCSVUseCase
	pdfUseCase      *export.ExportPDFUseCase
	settingsUseCase *settings.GetSettingsUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(
	csvUseCase *export.ExportCSVUseCase,
	pdfUseCase *export.ExportPDFUseCase,
	settingsUseCase *settings.GetSettingsUseCase,
) *ExportController {
	return &ExportController{
		csvUseCase:      csvUseCase,
		pdfUseCase:      pdfUseCase,
		settingsUseCase: settingsUseCase,
	}
}

// CSV handles GET /export/csv requests.
func (c *ExportController) CSV(ctx *gin.Context) {
	symbol, ok := c.currencySymbol(ctx)
	if !ok {
		return
	}

	output, err := c.csvUseCase.Execute(ctx.Request.Context(), export.ExportCSVInput{CurrencySymbol: symbol})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export records",
		})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, "text/csv", output.Data)
}

// PDF handles GET /export/pdf requests.
func (c *ExportController) PDF(ctx *gin.Context) {
	symbol, ok := c.currencySymbol(ctx)
	if !ok {
		return
	}

	output, err := c.pdfUseCase.Execute(ctx.Request.Context(), export.ExportPDFInput{CurrencySymbol: symbol})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export records",
		})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, "application/pdf", output.Data)
}

func (c *ExportController) currencySymbol(ctx *gin.Context) (string, bool) {
	output, err := c.settingsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load settings",
		})
		return "", false
	}
	return output.Settings.CurrencySymbol, true
}
