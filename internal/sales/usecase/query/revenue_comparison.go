package query

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/sales-insights/internal/sales/domain"
)

const periodLabelLayout = "2006-01-02"

// RevenueComparisonQuery compares revenue per category over one range.
// An empty Category means every category.
type RevenueComparisonQuery struct {
	Start    time.Time
	End      time.Time
	Category string
}

// RevenueComparisonHandler handles revenue comparison query
type RevenueComparisonHandler struct {
	repo domain.SaleRepository
}

// NewRevenueComparisonHandler creates a new revenue comparison handler
func NewRevenueComparisonHandler(repo domain.SaleRepository) *RevenueComparisonHandler {
	return &RevenueComparisonHandler{repo: repo}
}

// Handle executes the revenue comparison query. Every row is labelled with
// the whole requested range.
func (h *RevenueComparisonHandler) Handle(ctx context.Context, q RevenueComparisonQuery) ([]domain.CategoryRevenue, error) {
	rows, err := h.repo.RevenueByCategory(ctx, q.Start, q.End, q.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to compare revenue: %w", err)
	}

	label := PeriodLabel(q.Start, q.End)
	result := make([]domain.CategoryRevenue, 0, len(rows))
	for _, row := range rows {
		row.Period = label
		result = append(result, row)
	}

	return result, nil
}

// PeriodLabel renders a date range as "2024-01-01 to 2024-01-31"
func PeriodLabel(start, end time.Time) string {
	return start.Format(periodLabelLayout) + " to " + end.Format(periodLabelLayout)
}
