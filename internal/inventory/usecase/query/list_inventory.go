package query

import (
	"context"
	"fmt"

	"github.com/tair/sales-insights/internal/inventory/domain"
)

// InventoryStatusQuery represents the query to list every inventory row
type InventoryStatusQuery struct{}

// InventoryStatusHandler handles inventory status query
type InventoryStatusHandler struct {
	repo domain.InventoryRepository
}

// NewInventoryStatusHandler creates a new inventory status handler
func NewInventoryStatusHandler(repo domain.InventoryRepository) *InventoryStatusHandler {
	return &InventoryStatusHandler{repo: repo}
}

// Handle executes the inventory status query
func (h *InventoryStatusHandler) Handle(ctx context.Context, _ InventoryStatusQuery) ([]domain.Inventory, error) {
	inventories, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return inventories, nil
}

// LowStockQuery represents the query to list rows below the threshold
type LowStockQuery struct{}

// LowStockHandler handles low stock query
type LowStockHandler struct {
	repo domain.InventoryRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.InventoryRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle returns rows with quantity < domain.LowStockThreshold
func (h *LowStockHandler) Handle(ctx context.Context, _ LowStockQuery) ([]domain.Inventory, error) {
	inventories, err := h.repo.FindBelow(ctx, domain.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock inventory: %w", err)
	}
	return inventories, nil
}
