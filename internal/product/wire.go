//go:build wireinject
// +build wireinject

package product

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/sales-insights/internal/product/delivery/http"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var HandlerSet = wire.NewSet(
	ProvideCreateProductHandler,
	ProvideListProductsHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, registerer prometheus.Registerer) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewProductHandler,
	)
	return nil, nil
}
