package command

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/sales-insights/internal/product/domain"
)

// CreateProductCommand represents the command to create a new product.
// Category is not part of the command: products created through the API
// carry an empty category.
type CreateProductCommand struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		Name:          cmd.Name,
		Description:   cmd.Description,
		Price:         cmd.Price,
		StockQuantity: cmd.StockQuantity,
	}

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
