package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tair/sales-insights/internal/sales/domain"
)

// SaleRepository is a testify mock of domain.SaleRepository
type SaleRepository struct {
	mock.Mock
}

func (m *SaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *SaleRepository) CreateBatch(ctx context.Context, sales []domain.Sale) error {
	args := m.Called(ctx, sales)
	return args.Error(0)
}

func (m *SaleRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]domain.Sale, error) {
	args := m.Called(ctx, start, end)
	sales, _ := args.Get(0).([]domain.Sale)
	return sales, args.Error(1)
}

func (m *SaleRepository) FindByProductID(ctx context.Context, productID uint) ([]domain.Sale, error) {
	args := m.Called(ctx, productID)
	sales, _ := args.Get(0).([]domain.Sale)
	return sales, args.Error(1)
}

func (m *SaleRepository) RevenueByCategory(ctx context.Context, start, end time.Time, category string) ([]domain.CategoryRevenue, error) {
	args := m.Called(ctx, start, end, category)
	rows, _ := args.Get(0).([]domain.CategoryRevenue)
	return rows, args.Error(1)
}

func (m *SaleRepository) RevenueByBucket(ctx context.Context, bucket domain.Bucket) ([]domain.RevenuePoint, error) {
	args := m.Called(ctx, bucket)
	points, _ := args.Get(0).([]domain.RevenuePoint)
	return points, args.Error(1)
}

// ReportInvalidator is a testify mock of domain.ReportInvalidator
type ReportInvalidator struct {
	mock.Mock
}

func (m *ReportInvalidator) InvalidateReports(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
