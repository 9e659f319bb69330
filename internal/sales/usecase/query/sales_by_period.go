package query

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/sales-insights/internal/sales/domain"
)

// SalesByPeriodQuery selects sales with Start <= sale_date <= End
type SalesByPeriodQuery struct {
	Start time.Time
	End   time.Time
}

// SalesByPeriodHandler handles sales by period query
type SalesByPeriodHandler struct {
	repo domain.SaleRepository
}

// NewSalesByPeriodHandler creates a new sales by period handler
func NewSalesByPeriodHandler(repo domain.SaleRepository) *SalesByPeriodHandler {
	return &SalesByPeriodHandler{repo: repo}
}

// Handle executes the query. An empty range is reported as ErrNoSalesInPeriod.
func (h *SalesByPeriodHandler) Handle(ctx context.Context, q SalesByPeriodQuery) ([]domain.Sale, error) {
	sales, err := h.repo.FindByPeriod(ctx, q.Start, q.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales by period: %w", err)
	}

	if len(sales) == 0 {
		return nil, domain.ErrNoSalesInPeriod
	}

	return sales, nil
}
