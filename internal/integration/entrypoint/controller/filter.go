package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// parseRecordKind reads the kind query parameter; an absent value means
// expense.
func parseRecordKind(ctx *gin.Context) (entity.RecordKind, bool) {
	switch ctx.DefaultQuery("kind", string(entity.RecordKindExpense)) {
	case string(entity.RecordKindExpense):
		return entity.RecordKindExpense, true
	case string(entity.RecordKindIncome):
		return entity.RecordKindIncome, true
	default:
		return "", false
	}
}

// parseFilter builds the record filter from query parameters: scope
// (all, today, custom), category, search and date.
func parseFilter(ctx *gin.Context) (entity.Filter, bool) {
	filter := entity.NewFilter()

	switch ctx.DefaultQuery("scope", string(entity.TimeScopeAll)) {
	case string(entity.TimeScopeAll):
		filter.Scope = entity.TimeScopeAll
	case string(entity.TimeScopeToday):
		filter.Scope = entity.TimeScopeToday
	case string(entity.TimeScopeCustom):
		filter.Scope = entity.TimeScopeCustom
	default:
		return entity.Filter{}, false
	}

	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}
	filter.Search = ctx.Query("search")

	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			date, err = time.Parse(time.RFC3339, dateStr)
			if err != nil {
				return entity.Filter{}, false
			}
		}
		filter.CustomDate = &date
	}

	return filter, true
}
