package command

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/sales-insights/internal/sales/domain"
	"github.com/tair/sales-insights/internal/sales/domain/mocks"
)

func TestRecordSaleHandler_StoresRevenueAsGiven(t *testing.T) {
	repo := new(mocks.SaleRepository)
	invalidator := new(mocks.ReportInvalidator)
	handler := NewRecordSaleHandler(repo, invalidator)

	saleDate := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Sale) bool {
		return s.ProductID == 3 &&
			s.QuantitySold == 2 &&
			s.SaleDate.Equal(saleDate) &&
			s.TotalRevenue.Equal(decimal.RequireFromString("1.00"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Sale).ID = 11
	}).Return(nil)
	invalidator.On("InvalidateReports", mock.Anything).Return(nil)

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{
		ProductID:    3,
		QuantitySold: 2,
		SaleDate:     saleDate,
		TotalRevenue: decimal.RequireFromString("1.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), sale.ID)
	repo.AssertExpectations(t)
	invalidator.AssertExpectations(t)
}

func TestRecordSaleHandler_DefaultsSaleDateToNow(t *testing.T) {
	repo := new(mocks.SaleRepository)
	handler := NewRecordSaleHandler(repo, nil)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	handler.now = func() time.Time { return fixed }

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Sale")).Return(nil)

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{ProductID: 1, QuantitySold: 1})

	require.NoError(t, err)
	assert.Equal(t, fixed, sale.SaleDate)
}

func TestRecordSaleHandler_UnknownProduct(t *testing.T) {
	repo := new(mocks.SaleRepository)
	invalidator := new(mocks.ReportInvalidator)
	handler := NewRecordSaleHandler(repo, invalidator)

	repo.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("insert sale: %w", domain.ErrProductNotFound))

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{ProductID: 404})

	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	invalidator.AssertNotCalled(t, "InvalidateReports", mock.Anything)
}

func TestRecordSaleHandler_InvalidationFailureIsIgnored(t *testing.T) {
	repo := new(mocks.SaleRepository)
	invalidator := new(mocks.ReportInvalidator)
	handler := NewRecordSaleHandler(repo, invalidator)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	invalidator.On("InvalidateReports", mock.Anything).Return(errors.New("redis down"))

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{ProductID: 1, QuantitySold: 1})

	require.NoError(t, err)
	assert.NotNil(t, sale)
}

func TestRecordSaleHandler_RepositoryError(t *testing.T) {
	repo := new(mocks.SaleRepository)
	handler := NewRecordSaleHandler(repo, nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := handler.Handle(context.Background(), RecordSaleCommand{ProductID: 1})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRecordSaleHandler_ReturnsRowAsStored(t *testing.T) {
	repo := new(mocks.SaleRepository)
	handler := NewRecordSaleHandler(repo, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Sale")).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*domain.Sale)
			s.ID = 4
			s.TotalRevenue = s.TotalRevenue.Round(2)
			s.SaleDate = s.SaleDate.Truncate(time.Microsecond)
		}).
		Return(nil)

	sale, err := handler.Handle(context.Background(), RecordSaleCommand{
		ProductID:    1,
		QuantitySold: 1,
		SaleDate:     time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.UTC),
		TotalRevenue: decimal.RequireFromString("19.995"),
	})

	require.NoError(t, err)
	assert.True(t, sale.TotalRevenue.Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, 123456000, sale.SaleDate.Nanosecond())
}
