// Package seed inserts a small demo catalog into an empty database.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	inventorydomain "github.com/tair/sales-insights/internal/inventory/domain"
	productdomain "github.com/tair/sales-insights/internal/product/domain"
	salesdomain "github.com/tair/sales-insights/internal/sales/domain"
	"github.com/tair/sales-insights/pkg/logger"
)

type demoItem struct {
	name         string
	description  string
	price        string
	stock        int
	category     string
	quantitySold int
	revenue      string
	onHand       int
}

var demoCatalog = []demoItem{
	{"Laptop", "High-end gaming laptop", "1200.00", 50, "Electronics", 10, "12000.00", 40},
	{"Smartphone", "Latest model smartphone", "800.00", 100, "Electronics", 15, "12000.00", 85},
	{"Headphones", "Noise-cancelling headphones", "150.00", 200, "Accessories", 50, "7500.00", 150},
	{"T-Shirt", "Cotton T-shirt", "20.00", 500, "Clothing", 100, "2000.00", 400},
	{"Coffee Maker", "Automatic coffee maker", "100.00", 30, "Home Appliances", 5, "500.00", 25},
}

// Seeder writes the demo catalog through the domain repositories
type Seeder struct {
	products  productdomain.ProductRepository
	sales     salesdomain.SaleRepository
	inventory inventorydomain.InventoryRepository
	now       func() time.Time
}

func NewSeeder(
	products productdomain.ProductRepository,
	sales salesdomain.SaleRepository,
	inventory inventorydomain.InventoryRepository,
) *Seeder {
	return &Seeder{
		products:  products,
		sales:     sales,
		inventory: inventory,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run inserts five products with one sale and one inventory row each.
// It does nothing when any product already exists. The returned bool
// reports whether data was inserted.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	count, err := s.products.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		logger.Info(ctx).Int64("products", count).Msg("Demo data already exists, skipping")
		return false, nil
	}

	products := make([]productdomain.Product, len(demoCatalog))
	for i, item := range demoCatalog {
		products[i] = productdomain.Product{
			Name:          item.name,
			Description:   item.description,
			Price:         decimal.RequireFromString(item.price),
			StockQuantity: item.stock,
			Category:      item.category,
		}
	}
	if err := s.products.CreateBatch(ctx, products); err != nil {
		return false, fmt.Errorf("insert demo products: %w", err)
	}

	now := s.now()
	sales := make([]salesdomain.Sale, len(demoCatalog))
	stock := make([]inventorydomain.Inventory, len(demoCatalog))
	for i, item := range demoCatalog {
		sales[i] = salesdomain.Sale{
			ProductID:    products[i].ID,
			QuantitySold: item.quantitySold,
			SaleDate:     now,
			TotalRevenue: decimal.RequireFromString(item.revenue),
		}
		stock[i] = inventorydomain.Inventory{
			ProductID:   products[i].ID,
			Quantity:    item.onHand,
			LastUpdated: now,
		}
	}

	if err := s.sales.CreateBatch(ctx, sales); err != nil {
		return false, fmt.Errorf("insert demo sales: %w", err)
	}
	if err := s.inventory.CreateBatch(ctx, stock); err != nil {
		return false, fmt.Errorf("insert demo inventory: %w", err)
	}

	logger.Info(ctx).Int("products", len(products)).Msg("Demo data inserted")
	return true, nil
}
