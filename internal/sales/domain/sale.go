package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	productdomain "github.com/tair/sales-insights/internal/product/domain"
)

var (
	// ErrNoSalesInPeriod is returned when a date range matches no sales
	ErrNoSalesInPeriod = errors.New("no sales data for the given date range")
	// ErrSalesNotFound is returned when a product has no recorded sales
	ErrSalesNotFound = errors.New("sales data not found")
	// ErrProductNotFound is returned when a sale references an unknown product
	ErrProductNotFound = productdomain.ErrProductNotFound
	// ErrInvalidBucket is returned for an unknown revenue bucket
	ErrInvalidBucket = errors.New("invalid revenue bucket")
)

// Sale records units sold for a product. TotalRevenue is stored as supplied
// by the caller and is never derived from quantity and price.
type Sale struct {
	ID           uint                   `json:"id" gorm:"primaryKey"`
	ProductID    uint                   `json:"product_id" gorm:"index"`
	QuantitySold int                    `json:"quantity_sold"`
	SaleDate     time.Time              `json:"sale_date" gorm:"index"`
	TotalRevenue decimal.Decimal        `json:"total_revenue" gorm:"type:decimal(10,2)"`
	Product      *productdomain.Product `json:"-" gorm:"foreignKey:ProductID"`
}

// TableName specifies the table name
func (Sale) TableName() string {
	return "sales"
}

// Bucket is a time truncation used to group revenue
type Bucket string

const (
	BucketDay   Bucket = "day"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
	BucketYear  Bucket = "year"
)

// Valid reports whether b is one of the known buckets
func (b Bucket) Valid() bool {
	switch b {
	case BucketDay, BucketWeek, BucketMonth, BucketYear:
		return true
	}
	return false
}

// RevenuePoint is the summed revenue of one bucket
type RevenuePoint struct {
	Period  string          `json:"period"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CategoryRevenue is the summed revenue of one category over a period
type CategoryRevenue struct {
	Period   string          `json:"period"`
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SaleRepository defines the contract for sales data access
type SaleRepository interface {
	Create(ctx context.Context, sale *Sale) error
	CreateBatch(ctx context.Context, sales []Sale) error
	FindByPeriod(ctx context.Context, start, end time.Time) ([]Sale, error)
	FindByProductID(ctx context.Context, productID uint) ([]Sale, error)
	RevenueByCategory(ctx context.Context, start, end time.Time, category string) ([]CategoryRevenue, error)
	RevenueByBucket(ctx context.Context, bucket Bucket) ([]RevenuePoint, error)
}

// ReportInvalidator drops cached revenue reports after new sales land
type ReportInvalidator interface {
	InvalidateReports(ctx context.Context) error
}
