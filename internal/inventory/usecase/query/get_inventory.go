package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/sales-insights/internal/inventory/domain"
)

// GetInventoryQuery represents the query to get a product's inventory
type GetInventoryQuery struct {
	ProductID uint
}

// GetInventoryHandler handles get inventory query
type GetInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewGetInventoryHandler creates a new get inventory handler
func NewGetInventoryHandler(repo domain.InventoryRepository) *GetInventoryHandler {
	return &GetInventoryHandler{repo: repo}
}

// Handle executes the get inventory query
func (h *GetInventoryHandler) Handle(ctx context.Context, q GetInventoryQuery) (*domain.Inventory, error) {
	inventory, err := h.repo.FindFirstByProductID(ctx, q.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrInventoryNotFound) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return inventory, nil
}
