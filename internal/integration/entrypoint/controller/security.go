package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/security"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// SecurityController handles security gate endpoints.
type SecurityController struct {
	gate             *security.Gate
	configureUseCase *security.ConfigureLockUseCase
}

// NewSecurityController creates a new security controller instance.
func NewSecurityController(gate *security.Gate, configureUseCase *security.ConfigureLockUseCase) *SecurityController {
	return &SecurityController{
		gate:             gate,
		configureUseCase: configureUseCase,
	}
}

// Status handles GET /security/status requests.
func (c *SecurityController) Status(ctx *gin.Context) {
	settings := c.gate.Settings()
	ctx.JSON(http.StatusOK, dto.SecurityStatusResponse{
		State:        string(c.gate.Status()),
		Enabled:      settings.Enabled,
		UseBiometric: settings.UseBiometric,
		UsePIN:       settings.UsePIN,
	})
}

// UnlockPIN handles POST /security/unlock/pin requests.
func (c *SecurityController) UnlockPIN(ctx *gin.Context) {
	var req dto.PINUnlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	token, err := c.gate.SubmitPIN(ctx.Request.Context(), req.PIN)
	if err != nil {
		c.handleSecurityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UnlockResponse{
		State: string(c.gate.Status()),
		Token: token,
	})
}

// UnlockBiometric handles POST /security/unlock/biometric requests.
func (c *SecurityController) UnlockBiometric(ctx *gin.Context) {
	token, err := c.gate.SubmitBiometric(ctx.Request.Context())
	if err != nil {
		c.handleSecurityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UnlockResponse{
		State: string(c.gate.Status()),
		Token: token,
	})
}

// Lifecycle handles POST /security/lifecycle requests. The host notifies
// the gate of its lifecycle transitions; leaving the foreground locks the
// gate when app lock is enabled.
func (c *SecurityController) Lifecycle(ctx *gin.Context) {
	var req dto.LifecycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid lifecycle event",
		})
		return
	}

	c.gate.HandleLifecycle(entity.LifecycleEvent(req.Event))
	ctx.JSON(http.StatusOK, dto.SecurityStatusResponse{
		State:        string(c.gate.Status()),
		Enabled:      c.gate.Settings().Enabled,
		UseBiometric: c.gate.Settings().UseBiometric,
		UsePIN:       c.gate.Settings().UsePIN,
	})
}

// ConfigureLock handles PUT /security/lock requests.
func (c *SecurityController) ConfigureLock(ctx *gin.Context) {
	var req dto.ConfigureLockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.configureUseCase.Execute(ctx.Request.Context(), security.ConfigureLockInput{
		Enabled:      req.Enabled,
		UseBiometric: req.UseBiometric,
		UsePIN:       req.UsePIN,
		Passcode:     req.Passcode,
	})
	if err != nil {
		c.handleSecurityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LockSettingsResponse{
		Enabled:      output.Settings.Enabled,
		UseBiometric: output.Settings.UseBiometric,
		UsePIN:       output.Settings.UsePIN,
	})
}

// handleSecurityError maps security errors to HTTP responses. Failed
// unlock attempts are 401; configuration problems are 400.
func (c *SecurityController) handleSecurityError(ctx *gin.Context, err error) {
	var secErr *domainerror.SecurityError
	if !errors.As(err, &secErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	status := http.StatusBadRequest
	switch secErr.Code {
	case domainerror.ErrCodePINMismatch, domainerror.ErrCodeBiometricFailed:
		status = http.StatusUnauthorized
	case domainerror.ErrCodeAppLocked:
		status = http.StatusLocked
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: secErr.Message,
		Code:  string(secErr.Code),
	})
}
