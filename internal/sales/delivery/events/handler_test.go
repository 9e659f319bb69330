package events

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/sales-insights/internal/sales/domain"
	"github.com/tair/sales-insights/internal/sales/domain/mocks"
	"github.com/tair/sales-insights/internal/sales/usecase/command"
	"github.com/tair/sales-insights/kafka"
)

func TestSaleSubmittedHandler_RecordsSale(t *testing.T) {
	repo := new(mocks.SaleRepository)
	saleDate := time.Date(2024, 8, 1, 9, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Sale) bool {
		return s.ProductID == 2 &&
			s.QuantitySold == 5 &&
			s.SaleDate.Equal(saleDate) &&
			s.SaleDate.Location() == time.UTC &&
			s.TotalRevenue.Equal(decimal.RequireFromString("49.95"))
	})).Return(nil)

	handler := NewSaleSubmittedHandler(command.NewRecordSaleHandler(repo, nil))
	err := handler(context.Background(), kafka.SaleSubmittedEvent{
		EventID:      "evt-9",
		ProductID:    2,
		QuantitySold: 5,
		SaleDate:     &saleDate,
		TotalRevenue: decimal.RequireFromString("49.95"),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSaleSubmittedHandler_UnknownProduct(t *testing.T) {
	repo := new(mocks.SaleRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrProductNotFound)

	handler := NewSaleSubmittedHandler(command.NewRecordSaleHandler(repo, nil))
	err := handler(context.Background(), kafka.SaleSubmittedEvent{EventID: "evt-10", ProductID: 404})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Contains(t, err.Error(), "evt-10")
}
