package sales

import (
	"gorm.io/gorm"

	"github.com/tair/sales-insights/internal/sales/delivery/http"
	"github.com/tair/sales-insights/internal/sales/domain"
	"github.com/tair/sales-insights/internal/sales/repository"
	"github.com/tair/sales-insights/internal/sales/usecase/command"
	"github.com/tair/sales-insights/internal/sales/usecase/query"
	"github.com/tair/sales-insights/pkg/cache"
)

// Module bundles the sales entry points. RecordSale is shared by the HTTP
// handler and the Kafka consumer.
type Module struct {
	HTTP       *http.SalesHandler
	RecordSale *command.RecordSaleHandler
}

// ProvideSaleRepository provides the traced sale repository
func ProvideSaleRepository(db *gorm.DB) domain.SaleRepository {
	return repository.NewTracingSaleRepository(repository.NewGormSaleRepository(db))
}

// ProvideReportInvalidator exposes the report cache as the invalidator used
// after a sale is recorded
func ProvideReportInvalidator(reportCache *cache.ReportCache) domain.ReportInvalidator {
	if !reportCache.Enabled() {
		return nil
	}
	return reportCache
}

func ProvideRecordSaleHandler(repo domain.SaleRepository, invalidator domain.ReportInvalidator) *command.RecordSaleHandler {
	return command.NewRecordSaleHandler(repo, invalidator)
}

// Query Handlers Providers
func ProvideSalesByPeriodHandler(repo domain.SaleRepository) *query.SalesByPeriodHandler {
	return query.NewSalesByPeriodHandler(repo)
}

func ProvideSalesByProductHandler(repo domain.SaleRepository) *query.SalesByProductHandler {
	return query.NewSalesByProductHandler(repo)
}

func ProvideRevenueComparisonHandler(repo domain.SaleRepository) *query.RevenueComparisonHandler {
	return query.NewRevenueComparisonHandler(repo)
}

func ProvideRevenueByBucketHandler(repo domain.SaleRepository) *query.RevenueByBucketHandler {
	return query.NewRevenueByBucketHandler(repo)
}
