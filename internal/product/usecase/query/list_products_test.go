package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/sales-insights/internal/product/domain"
	"github.com/tair/sales-insights/internal/product/domain/mocks"
)

func TestListProductsHandler_Handle(t *testing.T) {
	repo := new(mocks.ProductRepository)
	ctx := context.Background()
	repo.On("FindAll", ctx).Return([]domain.Product{{ID: 1, Name: "Laptop"}, {ID: 2, Name: "Mouse"}}, nil)

	products, err := NewListProductsHandler(repo).Handle(ctx, ListProductsQuery{})

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mouse", products[1].Name)
	repo.AssertExpectations(t)
}

func TestListProductsHandler_RepositoryError(t *testing.T) {
	repo := new(mocks.ProductRepository)
	boom := errors.New("timeout")
	repo.On("FindAll", context.Background()).Return(nil, boom)

	products, err := NewListProductsHandler(repo).Handle(context.Background(), ListProductsQuery{})

	assert.Nil(t, products)
	assert.ErrorIs(t, err, boom)
}
