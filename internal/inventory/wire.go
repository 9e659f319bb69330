//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/sales-insights/internal/inventory/delivery/http"
	"github.com/tair/sales-insights/internal/inventory/domain"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInventoryRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateInventoryHandler,
	ProvideUpdateQuantityHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideInventoryStatusHandler,
	ProvideLowStockHandler,
	ProvideGetInventoryHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher domain.EventPublisher, registerer prometheus.Registerer) (*http.InventoryHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
