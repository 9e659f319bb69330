package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/sales-insights/internal/sales/domain"
	"github.com/tair/sales-insights/internal/sales/domain/mocks"
)

var (
	janStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	janEnd   = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
)

func TestSalesByPeriodHandler_ReturnsSales(t *testing.T) {
	repo := new(mocks.SaleRepository)
	want := []domain.Sale{{ID: 1, ProductID: 2, QuantitySold: 3, SaleDate: janStart}}
	repo.On("FindByPeriod", mock.Anything, janStart, janEnd).Return(want, nil)

	got, err := NewSalesByPeriodHandler(repo).Handle(context.Background(), SalesByPeriodQuery{Start: janStart, End: janEnd})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSalesByPeriodHandler_EmptyIsNotFound(t *testing.T) {
	repo := new(mocks.SaleRepository)
	repo.On("FindByPeriod", mock.Anything, janStart, janEnd).Return([]domain.Sale{}, nil)

	got, err := NewSalesByPeriodHandler(repo).Handle(context.Background(), SalesByPeriodQuery{Start: janStart, End: janEnd})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNoSalesInPeriod)
}

func TestSalesByPeriodHandler_RepositoryError(t *testing.T) {
	repo := new(mocks.SaleRepository)
	repo.On("FindByPeriod", mock.Anything, janStart, janEnd).Return(nil, errors.New("boom"))

	_, err := NewSalesByPeriodHandler(repo).Handle(context.Background(), SalesByPeriodQuery{Start: janStart, End: janEnd})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoSalesInPeriod)
}

func TestSalesByProductHandler(t *testing.T) {
	repo := new(mocks.SaleRepository)
	repo.On("FindByProductID", mock.Anything, uint(7)).Return([]domain.Sale{{ID: 5, ProductID: 7}}, nil)
	repo.On("FindByProductID", mock.Anything, uint(8)).Return([]domain.Sale{}, nil)
	handler := NewSalesByProductHandler(repo)

	sales, err := handler.Handle(context.Background(), SalesByProductQuery{ProductID: 7})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, uint(5), sales[0].ID)

	_, err = handler.Handle(context.Background(), SalesByProductQuery{ProductID: 8})
	assert.ErrorIs(t, err, domain.ErrSalesNotFound)
}

func TestRevenueComparisonHandler_LabelsEveryRowWithRange(t *testing.T) {
	repo := new(mocks.SaleRepository)
	repo.On("RevenueByCategory", mock.Anything, janStart, janEnd, "").Return([]domain.CategoryRevenue{
		{Category: "Electronics", Revenue: decimal.RequireFromString("1200.00")},
		{Category: "Furniture", Revenue: decimal.RequireFromString("150.50")},
		{Category: "", Revenue: decimal.RequireFromString("9.99")},
	}, nil)

	rows, err := NewRevenueComparisonHandler(repo).Handle(context.Background(), RevenueComparisonQuery{Start: janStart, End: janEnd})

	require.NoError(t, err)
	require.Len(t, rows, 3)

	total := decimal.Zero
	for _, row := range rows {
		assert.Equal(t, "2024-01-01 to 2024-01-31", row.Period)
		total = total.Add(row.Revenue)
	}
	assert.True(t, decimal.RequireFromString("1360.49").Equal(total), total.String())
}

func TestRevenueComparisonHandler_PassesCategoryFilter(t *testing.T) {
	repo := new(mocks.SaleRepository)
	repo.On("RevenueByCategory", mock.Anything, janStart, janEnd, "Furniture").Return([]domain.CategoryRevenue{}, nil)

	rows, err := NewRevenueComparisonHandler(repo).Handle(context.Background(), RevenueComparisonQuery{
		Start: janStart, End: janEnd, Category: "Furniture",
	})

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	repo.AssertExpectations(t)
}

func TestRevenueByBucketHandler(t *testing.T) {
	repo := new(mocks.SaleRepository)
	points := []domain.RevenuePoint{
		{Period: "2024-01", Revenue: decimal.NewFromInt(10)},
		{Period: "2024-02", Revenue: decimal.NewFromInt(20)},
	}
	repo.On("RevenueByBucket", mock.Anything, domain.BucketMonth).Return(points, nil)
	repo.On("RevenueByBucket", mock.Anything, domain.BucketYear).Return(nil, nil)
	handler := NewRevenueByBucketHandler(repo)

	got, err := handler.Handle(context.Background(), RevenueByBucketQuery{Bucket: domain.BucketMonth})
	require.NoError(t, err)
	assert.Equal(t, points, got)

	empty, err := handler.Handle(context.Background(), RevenueByBucketQuery{Bucket: domain.BucketYear})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRevenueByBucketHandler_InvalidBucket(t *testing.T) {
	repo := new(mocks.SaleRepository)

	_, err := NewRevenueByBucketHandler(repo).Handle(context.Background(), RevenueByBucketQuery{Bucket: "fortnight"})

	assert.ErrorIs(t, err, domain.ErrInvalidBucket)
	repo.AssertNotCalled(t, "RevenueByBucket", mock.Anything, mock.Anything)
}

func TestPeriodLabel(t *testing.T) {
	start := time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 29, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, "2023-12-31 to 2024-02-29", PeriodLabel(start, end))
}
