package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/sales-insights/internal/product/domain"
	"github.com/tair/sales-insights/pkg/database"
)

// GormProductRepository implements domain.ProductRepository with gorm
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

// Create inserts product and reloads it, so price and timestamps carry the
// values the column types actually stored
func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		if err := conn.Create(product).Error; err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		if err := conn.First(product, product.ID).Error; err != nil {
			return fmt.Errorf("reload product %d: %w", product.ID, err)
		}
		return nil
	})
}

func (r *GormProductRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	return database.ScopedTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("insert products: %w", err)
		}
		return nil
	})
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	err := database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Find(&products).Error
	})
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return products, nil
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Model(&domain.Product{}).Count(&count).Error
	})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}
