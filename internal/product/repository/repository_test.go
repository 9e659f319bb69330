package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/sales-insights/internal/product/domain"
	"github.com/tair/sales-insights/pkg/database/databasetest"
)

func TestGormProductRepository_CreateAndList(t *testing.T) {
	repo := NewGormProductRepository(databasetest.Open(t, &domain.Product{}))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	desk := &domain.Product{Name: "Desk", Description: "Oak desk", Price: decimal.RequireFromString("250.50"), StockQuantity: 3}
	require.NoError(t, repo.Create(ctx, desk))
	assert.NotZero(t, desk.ID)

	batch := []domain.Product{
		{Name: "Lamp", Price: decimal.NewFromInt(20), Category: "Home"},
		{Name: "Chair", Price: decimal.NewFromInt(80), Category: "Home"},
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))
	assert.NotZero(t, batch[0].ID)
	assert.NotZero(t, batch[1].ID)

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		if p.ID == desk.ID {
			assert.True(t, p.Price.Equal(decimal.RequireFromString("250.50")))
			assert.Empty(t, p.Category)
		}
	}

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGormProductRepository_FindAllEmpty(t *testing.T) {
	repo := NewGormProductRepository(databasetest.Open(t, &domain.Product{}))

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGormProductRepository_CreateReturnsStoredRow(t *testing.T) {
	repo := NewGormProductRepository(databasetest.Open(t, &domain.Product{}))
	ctx := context.Background()

	product := &domain.Product{Name: "Desk", Description: "Oak desk", Price: decimal.RequireFromString("250.005"), StockQuantity: 10}
	require.NoError(t, repo.Create(ctx, product))

	assert.True(t, product.Price.Equal(decimal.RequireFromString("250.01")), "price %s", product.Price)

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].Price.Equal(product.Price))
	assert.True(t, products[0].CreatedAt.Equal(product.CreatedAt))
}
