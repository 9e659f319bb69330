//go:build wireinject
// +build wireinject

package sales

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/sales-insights/internal/sales/delivery/http"
	"github.com/tair/sales-insights/pkg/cache"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSaleRepository,
	ProvideReportInvalidator,
)

var CommandHandlerSet = wire.NewSet(
	ProvideRecordSaleHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideSalesByPeriodHandler,
	ProvideSalesByProductHandler,
	ProvideRevenueComparisonHandler,
	ProvideRevenueByBucketHandler,
)

// InitializeModule initializes the sales HTTP handler and the shared record
// sale command. reportCache may be nil.
func InitializeModule(db *gorm.DB, reportCache *cache.ReportCache, registerer prometheus.Registerer) (*Module, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewSalesHandler,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}
