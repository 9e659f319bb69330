package product

import (
	"gorm.io/gorm"

	"github.com/tair/sales-insights/internal/product/domain"
	"github.com/tair/sales-insights/internal/product/repository"
	"github.com/tair/sales-insights/internal/product/usecase/command"
	"github.com/tair/sales-insights/internal/product/usecase/query"
)

// ProvideProductRepository provides the traced product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewTracingProductRepository(repository.NewGormProductRepository(db))
}

func ProvideCreateProductHandler(repo domain.ProductRepository) *command.CreateProductHandler {
	return command.NewCreateProductHandler(repo)
}

func ProvideListProductsHandler(repo domain.ProductRepository) *query.ListProductsHandler {
	return query.NewListProductsHandler(repo)
}
