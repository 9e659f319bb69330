package repository

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/sales-insights/internal/sales/domain"
)

var tracer = otel.Tracer("sales-repository")

// TracingSaleRepository wraps a SaleRepository with a span per call
type TracingSaleRepository struct {
	next domain.SaleRepository
}

func NewTracingSaleRepository(next domain.SaleRepository) *TracingSaleRepository {
	return &TracingSaleRepository{next: next}
}

func (r *TracingSaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("sale.product_id", int(sale.ProductID)),
			attribute.Int("sale.quantity_sold", sale.QuantitySold),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, sale); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("sale.id", int(sale.ID)))
	return nil
}

func (r *TracingSaleRepository) CreateBatch(ctx context.Context, sales []domain.Sale) error {
	ctx, span := tracer.Start(ctx, "repository.CreateBatch",
		trace.WithAttributes(attribute.Int("batch.size", len(sales))),
	)
	defer span.End()

	if err := r.next.CreateBatch(ctx, sales); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func (r *TracingSaleRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]domain.Sale, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByPeriod",
		trace.WithAttributes(periodAttributes(start, end)...),
	)
	defer span.End()

	sales, err := r.next.FindByPeriod(ctx, start, end)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(sales)))
	return sales, nil
}

func (r *TracingSaleRepository) FindByProductID(ctx context.Context, productID uint) ([]domain.Sale, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByProductID",
		trace.WithAttributes(attribute.Int("sale.product_id", int(productID))),
	)
	defer span.End()

	sales, err := r.next.FindByProductID(ctx, productID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(sales)))
	return sales, nil
}

func (r *TracingSaleRepository) RevenueByCategory(ctx context.Context, start, end time.Time, category string) ([]domain.CategoryRevenue, error) {
	attrs := append(periodAttributes(start, end), attribute.String("report.category", category))
	ctx, span := tracer.Start(ctx, "repository.RevenueByCategory", trace.WithAttributes(attrs...))
	defer span.End()

	rows, err := r.next.RevenueByCategory(ctx, start, end, category)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(rows)))
	return rows, nil
}

func (r *TracingSaleRepository) RevenueByBucket(ctx context.Context, bucket domain.Bucket) ([]domain.RevenuePoint, error) {
	ctx, span := tracer.Start(ctx, "repository.RevenueByBucket",
		trace.WithAttributes(attribute.String("report.bucket", string(bucket))),
	)
	defer span.End()

	points, err := r.next.RevenueByBucket(ctx, bucket)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(points)))
	return points, nil
}

func periodAttributes(start, end time.Time) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("period.start", start.Format(time.RFC3339)),
		attribute.String("period.end", end.Format(time.RFC3339)),
	}
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
