package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/record"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// RecordController handles expense and income record endpoints.
type RecordController struct {
	listUseCase   *record.ListRecordsUseCase
	createUseCase *record.CreateRecordUseCase
	updateUseCase *record.UpdateRecordUseCase
	deleteUseCase *record.DeleteRecordUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	listUseCase *record.ListRecordsUseCase,
	createUseCase *record.CreateRecordUseCase,
	updateUseCase *record.UpdateRecordUseCase,
	deleteUseCase *record.DeleteRecordUseCase,
) *RecordController {
	return &RecordController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /records requests. The kind defaults to expense; scope,
// category, search and date narrow the result.
func (c *RecordController) List(ctx *gin.Context) {
	kind, ok := parseRecordKind(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record kind",
			Code:  string(domainerror.ErrCodeInvalidRecordKind),
		})
		return
	}

	filter, ok := parseFilter(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid filter parameters",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), record.ListRecordsInput{
		Kind:   kind,
		Filter: filter,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(output.Records, output.Total))
}

// Create handles POST /records requests.
func (c *RecordController) Create(ctx *gin.Context) {
	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), record.CreateRecordInput{
		Kind:         entity.RecordKind(req.Kind),
		Amount:       req.Amount,
		CategoryName: req.CategoryName,
		OccurredAt:   req.OccurredAt,
		Notes:        req.Notes,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordResponse(output.Record))
}

// Update handles PATCH /records/:id requests.
func (c *RecordController) Update(ctx *gin.Context) {
	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
		})
		return
	}

	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), record.UpdateRecordInput{
		RecordID:     recordID,
		Amount:       req.Amount,
		CategoryName: req.CategoryName,
		OccurredAt:   req.OccurredAt,
		Notes:        req.Notes,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output.Record))
}

// Delete handles DELETE /records/:id requests.
func (c *RecordController) Delete(ctx *gin.Context) {
	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{RecordID: recordID}); err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRecordError maps record errors to HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Record not found",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	var recErr *domainerror.RecordError
	if errors.As(err, &recErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
