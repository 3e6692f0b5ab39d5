package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// StatisticsResponse represents one statistics snapshot.
type StatisticsResponse struct {
	TotalToday     decimal.Decimal            `json:"total_today"`
	TotalThisWeek  decimal.Decimal            `json:"total_this_week"`
	TotalThisMonth decimal.Decimal            `json:"total_this_month"`
	Breakdown      map[string]decimal.Decimal `json:"breakdown"`
}

// StatisticsPairResponse carries the snapshot over all records and the one
// over the currently filtered subset.
type StatisticsPairResponse struct {
	Full     StatisticsResponse `json:"full"`
	Filtered StatisticsResponse `json:"filtered"`
}

// ToStatisticsResponse converts a domain Statistics value to its DTO.
func ToStatisticsResponse(stats entity.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalToday:     stats.TotalToday,
		TotalThisWeek:  stats.TotalThisWeek,
		TotalThisMonth: stats.TotalThisMonth,
		Breakdown:      stats.Breakdown,
	}
}
