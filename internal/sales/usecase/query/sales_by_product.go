package query

import (
	"context"
	"fmt"

	"github.com/tair/sales-insights/internal/sales/domain"
)

// SalesByProductQuery represents the query to list a product's sales
type SalesByProductQuery struct {
	ProductID uint
}

// SalesByProductHandler handles sales by product query
type SalesByProductHandler struct {
	repo domain.SaleRepository
}

// NewSalesByProductHandler creates a new sales by product handler
func NewSalesByProductHandler(repo domain.SaleRepository) *SalesByProductHandler {
	return &SalesByProductHandler{repo: repo}
}

// Handle executes the sales by product query
func (h *SalesByProductHandler) Handle(ctx context.Context, q SalesByProductQuery) ([]domain.Sale, error) {
	sales, err := h.repo.FindByProductID(ctx, q.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for product %d: %w", q.ProductID, err)
	}

	if len(sales) == 0 {
		return nil, domain.ErrSalesNotFound
	}

	return sales, nil
}
