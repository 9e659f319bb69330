package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/sales-insights/internal/inventory/domain"
	"github.com/tair/sales-insights/internal/inventory/domain/mocks"
)

func TestLowStockHandler_UsesThreshold(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("FindBelow", mock.Anything, 10).Return([]domain.Inventory{{ID: 1, ProductID: 1, Quantity: 9}}, nil)

	rows, err := NewLowStockHandler(repo).Handle(context.Background(), LowStockQuery{})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsLowStock())
	repo.AssertExpectations(t)
}

func TestInventoryStatusHandler(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("FindAll", mock.Anything).Return([]domain.Inventory{{ID: 1}, {ID: 2}}, nil)

	rows, err := NewInventoryStatusHandler(repo).Handle(context.Background(), InventoryStatusQuery{})

	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestGetInventoryHandler(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("FindFirstByProductID", mock.Anything, uint(1)).Return(&domain.Inventory{ID: 3, ProductID: 1, Quantity: 50}, nil)
	repo.On("FindFirstByProductID", mock.Anything, uint(2)).Return(nil, domain.ErrInventoryNotFound)
	repo.On("FindFirstByProductID", mock.Anything, uint(3)).Return(nil, errors.New("timeout"))
	h := NewGetInventoryHandler(repo)

	inv, err := h.Handle(context.Background(), GetInventoryQuery{ProductID: 1})
	require.NoError(t, err)
	assert.Equal(t, 50, inv.Quantity)

	_, err = h.Handle(context.Background(), GetInventoryQuery{ProductID: 2})
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)

	_, err = h.Handle(context.Background(), GetInventoryQuery{ProductID: 3})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInventoryNotFound)
}

func TestIsLowStock_Boundary(t *testing.T) {
	assert.True(t, domain.Inventory{Quantity: 9}.IsLowStock())
	assert.False(t, domain.Inventory{Quantity: 10}.IsLowStock())
	assert.True(t, domain.Inventory{Quantity: -1}.IsLowStock())
}
