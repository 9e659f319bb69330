package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/sales-insights/internal/sales/domain"
	"github.com/tair/sales-insights/pkg/logger"
)

// RecordSaleCommand represents the command to record a sale.
// TotalRevenue is stored as given.
type RecordSaleCommand struct {
	ProductID    uint
	QuantitySold int
	SaleDate     time.Time
	TotalRevenue decimal.Decimal
}

// RecordSaleHandler handles record sale command
type RecordSaleHandler struct {
	repo        domain.SaleRepository
	invalidator domain.ReportInvalidator
	now         func() time.Time
}

// NewRecordSaleHandler creates a new record sale handler. invalidator may be nil.
func NewRecordSaleHandler(repo domain.SaleRepository, invalidator domain.ReportInvalidator) *RecordSaleHandler {
	return &RecordSaleHandler{
		repo:        repo,
		invalidator: invalidator,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Handle executes the record sale command
func (h *RecordSaleHandler) Handle(ctx context.Context, cmd RecordSaleCommand) (*domain.Sale, error) {
	saleDate := cmd.SaleDate
	if saleDate.IsZero() {
		saleDate = h.now()
	}

	sale := &domain.Sale{
		ProductID:    cmd.ProductID,
		QuantitySold: cmd.QuantitySold,
		SaleDate:     saleDate,
		TotalRevenue: cmd.TotalRevenue,
	}

	if err := h.repo.Create(ctx, sale); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	// a failed invalidation is logged and the sale still succeeds
	if h.invalidator != nil {
		if err := h.invalidator.InvalidateReports(ctx); err != nil {
			logger.Warn(ctx).Err(err).Uint("sale_id", sale.ID).Msg("Failed to invalidate cached reports")
		}
	}

	return sale, nil
}
