package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/sales-insights/internal/inventory/domain"
	"github.com/tair/sales-insights/pkg/database"
)

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Inventory{})
}

func (r *GormInventoryRepository) Create(ctx context.Context, inventory *domain.Inventory) error {
	err := database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Omit(clause.Associations).Create(inventory).Error
	})
	return classifyInsertError(err)
}

func (r *GormInventoryRepository) CreateBatch(ctx context.Context, inventories []domain.Inventory) error {
	if len(inventories) == 0 {
		return nil
	}
	err := database.ScopedTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&inventories).Error
	})
	return classifyInsertError(err)
}

func (r *GormInventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	inventories := []domain.Inventory{}
	err := database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Order("id").Find(&inventories).Error
	})
	if err != nil {
		return nil, fmt.Errorf("select inventory: %w", err)
	}
	return inventories, nil
}

// FindBelow returns rows with quantity strictly less than threshold
func (r *GormInventoryRepository) FindBelow(ctx context.Context, threshold int) ([]domain.Inventory, error) {
	inventories := []domain.Inventory{}
	err := database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Where("quantity < ?", threshold).Order("id").Find(&inventories).Error
	})
	if err != nil {
		return nil, fmt.Errorf("select low stock inventory: %w", err)
	}
	return inventories, nil
}

func (r *GormInventoryRepository) FindFirstByProductID(ctx context.Context, productID uint) (*domain.Inventory, error) {
	var inventory domain.Inventory
	err := database.Scoped(ctx, r.db, func(conn *gorm.DB) error {
		return firstByProduct(conn, productID, &inventory)
	})
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("select inventory for product %d: %w", productID, err)
	}
	return &inventory, nil
}

func (r *GormInventoryRepository) UpdateQuantity(ctx context.Context, productID uint, quantity int) (*domain.Inventory, error) {
	var updated domain.Inventory
	err := database.ScopedTx(ctx, r.db, func(tx *gorm.DB) error {
		var current domain.Inventory
		if err := firstByProduct(tx, productID, &current); err != nil {
			return err
		}

		if err := tx.Model(&current).Update("quantity", quantity).Error; err != nil {
			return err
		}

		return tx.First(&updated, current.ID).Error
	})
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update inventory for product %d: %w", productID, err)
	}
	return &updated, nil
}

// firstByProduct loads the lowest-id row of productID; First orders by the
// primary key.
func firstByProduct(conn *gorm.DB, productID uint, dest *domain.Inventory) error {
	return conn.Where("product_id = ?", productID).First(dest).Error
}

func classifyInsertError(err error) error {
	if err == nil {
		return nil
	}
	if database.IsForeignKeyViolation(err) {
		return fmt.Errorf("insert inventory: %w", domain.ErrProductNotFound)
	}
	return fmt.Errorf("insert inventory: %w", err)
}
