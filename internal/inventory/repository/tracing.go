package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/sales-insights/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// TracingInventoryRepository wraps an InventoryRepository with a span per call
type TracingInventoryRepository struct {
	next domain.InventoryRepository
}

// NewTracingInventoryRepository creates a new repository with tracing
func NewTracingInventoryRepository(next domain.InventoryRepository) *TracingInventoryRepository {
	return &TracingInventoryRepository{next: next}
}

// Create with tracing
func (r *TracingInventoryRepository) Create(ctx context.Context, inventory *domain.Inventory) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(inventory.ProductID)),
			attribute.Int("inventory.quantity", inventory.Quantity),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, inventory); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("inventory.id", int(inventory.ID)))
	return nil
}

// CreateBatch with tracing
func (r *TracingInventoryRepository) CreateBatch(ctx context.Context, inventories []domain.Inventory) error {
	ctx, span := tracer.Start(ctx, "repository.CreateBatch",
		trace.WithAttributes(attribute.Int("batch.size", len(inventories))),
	)
	defer span.End()

	if err := r.next.CreateBatch(ctx, inventories); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

// FindAll with tracing
func (r *TracingInventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	inventories, err := r.next.FindAll(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(inventories)))
	return inventories, nil
}

// FindBelow with tracing
func (r *TracingInventoryRepository) FindBelow(ctx context.Context, threshold int) ([]domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindBelow",
		trace.WithAttributes(attribute.Int("inventory.threshold", threshold)),
	)
	defer span.End()

	inventories, err := r.next.FindBelow(ctx, threshold)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(inventories)))
	return inventories, nil
}

// FindFirstByProductID with tracing
func (r *TracingInventoryRepository) FindFirstByProductID(ctx context.Context, productID uint) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindFirstByProductID",
		trace.WithAttributes(attribute.Int("inventory.product_id", int(productID))),
	)
	defer span.End()

	inventory, err := r.next.FindFirstByProductID(ctx, productID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("inventory.id", int(inventory.ID)),
		attribute.Int("inventory.quantity", inventory.Quantity),
	)
	return inventory, nil
}

// UpdateQuantity with tracing
func (r *TracingInventoryRepository) UpdateQuantity(ctx context.Context, productID uint, quantity int) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.UpdateQuantity",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(productID)),
			attribute.Int("inventory.quantity", quantity),
		),
	)
	defer span.End()

	inventory, err := r.next.UpdateQuantity(ctx, productID, quantity)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("inventory.id", int(inventory.ID)))
	return inventory, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
