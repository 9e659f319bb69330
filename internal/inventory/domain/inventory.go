package domain

import (
	"context"
	"errors"
	"time"

	productdomain "github.com/tair/sales-insights/internal/product/domain"
)

// LowStockThreshold is the quantity below which a row is reported as low
// stock. A row holding exactly this many units is not low.
const LowStockThreshold = 10

var (
	// ErrInventoryNotFound is returned when a product has no inventory row
	ErrInventoryNotFound = errors.New("inventory not found")
	// ErrProductNotFound is returned when an update or insert targets an
	// unknown product
	ErrProductNotFound = productdomain.ErrProductNotFound
)

// Inventory represents the stock level of a product. By convention there is
// one row per product; nothing enforces it.
type Inventory struct {
	ID          uint                   `json:"id" gorm:"primaryKey"`
	ProductID   uint                   `json:"product_id" gorm:"not null;index"`
	Quantity    int                    `json:"quantity" gorm:"not null"`
	LastUpdated time.Time              `json:"last_updated"`
	Product     *productdomain.Product `json:"-" gorm:"foreignKey:ProductID"`
}

// TableName specifies the table name
func (Inventory) TableName() string {
	return "inventory"
}

// IsLowStock reports whether the row is below LowStockThreshold
func (i Inventory) IsLowStock() bool {
	return i.Quantity < LowStockThreshold
}

// InventoryRepository defines the contract for inventory data access
type InventoryRepository interface {
	Create(ctx context.Context, inventory *Inventory) error
	CreateBatch(ctx context.Context, inventories []Inventory) error
	FindAll(ctx context.Context) ([]Inventory, error)
	FindBelow(ctx context.Context, threshold int) ([]Inventory, error)
	FindFirstByProductID(ctx context.Context, productID uint) (*Inventory, error)
	// UpdateQuantity overwrites quantity on the first row of productID and
	// returns the row as re-read after the write. last_updated is left as is.
	UpdateQuantity(ctx context.Context, productID uint, quantity int) (*Inventory, error)
}

// EventPublisher announces inventory changes to other systems
type EventPublisher interface {
	PublishInventoryUpdated(ctx context.Context, inventory Inventory) error
}
