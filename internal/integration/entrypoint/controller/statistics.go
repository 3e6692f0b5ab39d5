package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/statistics"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// StatisticsController handles statistics endpoints.
type StatisticsController struct {
	getUseCase *statistics.GetStatisticsUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(getUseCase *statistics.GetStatisticsUseCase) *StatisticsController {
	return &StatisticsController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /statistics requests. It returns the snapshot over all
// records of the kind and the snapshot over the filtered subset.
func (c *StatisticsController) Get(ctx *gin.Context) {
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

	output, err := c.getUseCase.Execute(ctx.Request.Context(), statistics.GetStatisticsInput{
		Kind:   kind,
		Filter: filter,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.StatisticsPairResponse{
		Full:     dto.ToStatisticsResponse(output.Full),
		Filtered: dto.ToStatisticsResponse(output.Filtered),
	})
}
