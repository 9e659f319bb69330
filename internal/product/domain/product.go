package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a referenced product does not exist
var ErrProductNotFound = errors.New("product not found")

// Product represents a catalog item
type Product struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"size:50;index"`
	Description   string          `json:"description" gorm:"size:255"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	StockQuantity int             `json:"stock_quantity"`
	Category      string          `json:"category" gorm:"size:255"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	CreateBatch(ctx context.Context, products []Product) error
	FindAll(ctx context.Context) ([]Product, error)
	Count(ctx context.Context) (int64, error)
}
