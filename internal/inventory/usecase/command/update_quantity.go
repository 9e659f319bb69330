package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/sales-insights/internal/inventory/domain"
	"github.com/tair/sales-insights/pkg/logger"
)

// UpdateQuantityCommand represents the command to overwrite a product's
// inventory quantity. Any integer is accepted.
type UpdateQuantityCommand struct {
	ProductID uint
	Quantity  int
}

// UpdateQuantityHandler handles update quantity command
type UpdateQuantityHandler struct {
	repo      domain.InventoryRepository
	publisher domain.EventPublisher
}

// NewUpdateQuantityHandler creates a new update quantity handler. publisher may be nil.
func NewUpdateQuantityHandler(repo domain.InventoryRepository, publisher domain.EventPublisher) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{repo: repo, publisher: publisher}
}

// Handle executes the update quantity command and returns the re-read row
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (*domain.Inventory, error) {
	inventory, err := h.repo.UpdateQuantity(ctx, cmd.ProductID, cmd.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}

	if h.publisher != nil {
		if err := h.publisher.PublishInventoryUpdated(ctx, *inventory); err != nil {
			logger.Warn(ctx).
				Err(err).
				Uint("product_id", inventory.ProductID).
				Msg("Failed to publish inventory update")
		}
	}

	return inventory, nil
}
