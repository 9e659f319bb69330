package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tair/sales-insights/internal/inventory/domain"
)

// CreateInventoryCommand represents the command to create an inventory row
type CreateInventoryCommand struct {
	ProductID uint
	Quantity  int
}

// CreateInventoryHandler handles create inventory command
type CreateInventoryHandler struct {
	repo domain.InventoryRepository
	now  func() time.Time
}

// NewCreateInventoryHandler creates a new create inventory handler
func NewCreateInventoryHandler(repo domain.InventoryRepository) *CreateInventoryHandler {
	return &CreateInventoryHandler{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Handle executes the create inventory command
func (h *CreateInventoryHandler) Handle(ctx context.Context, cmd CreateInventoryCommand) (*domain.Inventory, error) {
	inventory := &domain.Inventory{
		ProductID:   cmd.ProductID,
		Quantity:    cmd.Quantity,
		LastUpdated: h.now(),
	}

	if err := h.repo.Create(ctx, inventory); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}

	return inventory, nil
}
