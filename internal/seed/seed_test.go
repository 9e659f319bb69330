package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	inventorydomain "github.com/tair/sales-insights/internal/inventory/domain"
	inventorymocks "github.com/tair/sales-insights/internal/inventory/domain/mocks"
	productdomain "github.com/tair/sales-insights/internal/product/domain"
	productmocks "github.com/tair/sales-insights/internal/product/domain/mocks"
	salesdomain "github.com/tair/sales-insights/internal/sales/domain"
	salesmocks "github.com/tair/sales-insights/internal/sales/domain/mocks"
)

func newSeeder() (*Seeder, *productmocks.ProductRepository, *salesmocks.SaleRepository, *inventorymocks.InventoryRepository) {
	products := new(productmocks.ProductRepository)
	sales := new(salesmocks.SaleRepository)
	inventory := new(inventorymocks.InventoryRepository)

	s := NewSeeder(products, sales, inventory)
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s, products, sales, inventory
}

func TestSeeder_Run_EmptyDatabase(t *testing.T) {
	s, products, sales, inventory := newSeeder()
	ctx := context.Background()

	products.On("Count", ctx).Return(int64(0), nil)
	products.On("CreateBatch", ctx, mock.AnythingOfType("[]domain.Product")).
		Run(func(args mock.Arguments) {
			batch := args.Get(1).([]productdomain.Product)
			for i := range batch {
				batch[i].ID = uint(i + 1)
			}
		}).
		Return(nil)

	var insertedSales []salesdomain.Sale
	sales.On("CreateBatch", ctx, mock.Anything).
		Run(func(args mock.Arguments) { insertedSales = args.Get(1).([]salesdomain.Sale) }).
		Return(nil)

	var insertedStock []inventorydomain.Inventory
	inventory.On("CreateBatch", ctx, mock.Anything).
		Run(func(args mock.Arguments) { insertedStock = args.Get(1).([]inventorydomain.Inventory) }).
		Return(nil)

	inserted, err := s.Run(ctx)
	require.NoError(t, err)
	assert.True(t, inserted)

	require.Len(t, insertedSales, 5)
	require.Len(t, insertedStock, 5)
	for i := range insertedSales {
		assert.Equal(t, uint(i+1), insertedSales[i].ProductID)
		assert.Equal(t, uint(i+1), insertedStock[i].ProductID)
	}
	assert.Equal(t, "12000", insertedSales[0].TotalRevenue.String())
	assert.Equal(t, 25, insertedStock[4].Quantity)
	assert.Equal(t, s.now(), insertedStock[0].LastUpdated)
}

func TestSeeder_Run_SkipsWhenProductsExist(t *testing.T) {
	s, products, sales, inventory := newSeeder()
	ctx := context.Background()

	products.On("Count", ctx).Return(int64(3), nil)

	inserted, err := s.Run(ctx)
	require.NoError(t, err)
	assert.False(t, inserted)

	products.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	sales.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	inventory.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestSeeder_Run_ProductInsertFails(t *testing.T) {
	s, products, sales, _ := newSeeder()
	ctx := context.Background()

	products.On("Count", ctx).Return(int64(0), nil)
	products.On("CreateBatch", ctx, mock.Anything).Return(errors.New("db down"))

	inserted, err := s.Run(ctx)
	assert.Error(t, err)
	assert.False(t, inserted)
	sales.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}
