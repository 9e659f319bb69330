package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/sales-insights/internal/sales/domain"
	"github.com/tair/sales-insights/pkg/database"
)

// GormSaleRepository implements domain.SaleRepository with gorm
type GormSaleRepository struct {
	db *gorm.DB
}

func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

func (r *GormSaleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Sale{})
}

// Create inserts sale and reloads it, so total_revenue and sale_date carry
// the values the column types actually stored
func (r *GormSaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	err := database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		if err := conn.Omit(clause.Associations).Create(sale).Error; err != nil {
			return err
		}
		if err := conn.First(sale, sale.ID).Error; err != nil {
			return fmt.Errorf("reload sale %d: %w", sale.ID, err)
		}
		return nil
	})
	return classifyInsertError(err)
}

func (r *GormSaleRepository) CreateBatch(ctx context.Context, sales []domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	err := database.ScopedTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&sales).Error
	})
	return classifyInsertError(err)
}

// FindByPeriod returns sales with start <= sale_date <= end
func (r *GormSaleRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]domain.Sale, error) {
	sales := []domain.Sale{}
	err := database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		return conn.
			Where("sale_date >= ? AND sale_date <= ?", start, end).
			Order("sale_date, id").
			Find(&sales).Error
	})
	if err != nil {
		return nil, fmt.Errorf("select sales by period: %w", err)
	}
	return sales, nil
}

func (r *GormSaleRepository) FindByProductID(ctx context.Context, productID uint) ([]domain.Sale, error) {
	sales := []domain.Sale{}
	err := database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Where("product_id = ?", productID).Order("id").Find(&sales).Error
	})
	if err != nil {
		return nil, fmt.Errorf("select sales by product: %w", err)
	}
	return sales, nil
}

// RevenueByCategory sums revenue per product category for sales in
// [start, end]. The returned rows carry no period label.
func (r *GormSaleRepository) RevenueByCategory(ctx context.Context, start, end time.Time, category string) ([]domain.CategoryRevenue, error) {
	rows := []domain.CategoryRevenue{}
	err := database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		q := conn.Table("sales").
			Select("COALESCE(products.category, '') AS category, COALESCE(SUM(sales.total_revenue), 0) AS revenue").
			Joins("JOIN products ON products.id = sales.product_id").
			Where("sales.sale_date >= ? AND sales.sale_date <= ?", start, end)

		if category != "" {
			q = q.Where("products.category = ?", category)
		}

		return q.Group("products.category").Order("category").Scan(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("sum revenue by category: %w", err)
	}
	return rows, nil
}

// RevenueByBucket sums revenue of every recorded sale grouped by the
// bucket's truncation of sale_date
func (r *GormSaleRepository) RevenueByBucket(ctx context.Context, bucket domain.Bucket) ([]domain.RevenuePoint, error) {
	expr, err := periodExpression(r.db.Dialector.Name(), bucket)
	if err != nil {
		return nil, err
	}

	rows := []domain.RevenuePoint{}
	err = database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Table("sales").
			Select(expr + " AS period, COALESCE(SUM(total_revenue), 0) AS revenue").
			Group("period").
			Order("period").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("sum revenue by %s: %w", bucket, err)
	}
	return rows, nil
}

func classifyInsertError(err error) error {
	if err == nil {
		return nil
	}
	if database.IsForeignKeyViolation(err) {
		return fmt.Errorf("insert sale: %w", domain.ErrProductNotFound)
	}
	return fmt.Errorf("insert sale: %w", err)
}
