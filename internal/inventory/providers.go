package inventory

import (
	"gorm.io/gorm"

	"github.com/tair/sales-insights/internal/inventory/domain"
	"github.com/tair/sales-insights/internal/inventory/repository"
	"github.com/tair/sales-insights/internal/inventory/usecase/command"
	"github.com/tair/sales-insights/internal/inventory/usecase/query"
)

// ProvideInventoryRepository provides the traced inventory repository
func ProvideInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return repository.NewTracingInventoryRepository(repository.NewGormInventoryRepository(db))
}

// Command Handlers Providers
func ProvideCreateInventoryHandler(repo domain.InventoryRepository) *command.CreateInventoryHandler {
	return command.NewCreateInventoryHandler(repo)
}

// ProvideUpdateQuantityHandler wires the event publisher, which is nil when
// Kafka is not configured
func ProvideUpdateQuantityHandler(repo domain.InventoryRepository, publisher domain.EventPublisher) *command.UpdateQuantityHandler {
	return command.NewUpdateQuantityHandler(repo, publisher)
}

// Query Handlers Providers
func ProvideInventoryStatusHandler(repo domain.InventoryRepository) *query.InventoryStatusHandler {
	return query.NewInventoryStatusHandler(repo)
}

func ProvideLowStockHandler(repo domain.InventoryRepository) *query.LowStockHandler {
	return query.NewLowStockHandler(repo)
}

func ProvideGetInventoryHandler(repo domain.InventoryRepository) *query.GetInventoryHandler {
	return query.NewGetInventoryHandler(repo)
}
