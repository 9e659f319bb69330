package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tair/sales-insights/internal/inventory/domain"
)

// InventoryRepository is a testify mock of domain.InventoryRepository
type InventoryRepository struct {
	mock.Mock
}

func (m *InventoryRepository) Create(ctx context.Context, inventory *domain.Inventory) error {
	args := m.Called(ctx, inventory)
	return args.Error(0)
}

func (m *InventoryRepository) CreateBatch(ctx context.Context, inventories []domain.Inventory) error {
	args := m.Called(ctx, inventories)
	return args.Error(0)
}

func (m *InventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	args := m.Called(ctx)
	inventories, _ := args.Get(0).([]domain.Inventory)
	return inventories, args.Error(1)
}

func (m *InventoryRepository) FindBelow(ctx context.Context, threshold int) ([]domain.Inventory, error) {
	args := m.Called(ctx, threshold)
	inventories, _ := args.Get(0).([]domain.Inventory)
	return inventories, args.Error(1)
}

func (m *InventoryRepository) FindFirstByProductID(ctx context.Context, productID uint) (*domain.Inventory, error) {
	args := m.Called(ctx, productID)
	inventory, _ := args.Get(0).(*domain.Inventory)
	return inventory, args.Error(1)
}

func (m *InventoryRepository) UpdateQuantity(ctx context.Context, productID uint, quantity int) (*domain.Inventory, error) {
	args := m.Called(ctx, productID, quantity)
	inventory, _ := args.Get(0).(*domain.Inventory)
	return inventory, args.Error(1)
}

// EventPublisher is a testify mock of domain.EventPublisher
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishInventoryUpdated(ctx context.Context, inventory domain.Inventory) error {
	args := m.Called(ctx, inventory)
	return args.Error(0)
}
