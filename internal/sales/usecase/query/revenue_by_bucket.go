package query

import (
	"context"
	"fmt"

	"github.com/tair/sales-insights/internal/sales/domain"
)

// RevenueByBucketQuery sums revenue of all sales per day, week, month or year
type RevenueByBucketQuery struct {
	Bucket domain.Bucket
}

// RevenueByBucketHandler handles revenue by bucket query
type RevenueByBucketHandler struct {
	repo domain.SaleRepository
}

// NewRevenueByBucketHandler creates a new revenue by bucket handler
func NewRevenueByBucketHandler(repo domain.SaleRepository) *RevenueByBucketHandler {
	return &RevenueByBucketHandler{repo: repo}
}

// Handle executes the revenue by bucket query. No sales yields an empty list.
func (h *RevenueByBucketHandler) Handle(ctx context.Context, q RevenueByBucketQuery) ([]domain.RevenuePoint, error) {
	if !q.Bucket.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidBucket, q.Bucket)
	}

	points, err := h.repo.RevenueByBucket(ctx, q.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to sum %s revenue: %w", q.Bucket, err)
	}

	if points == nil {
		points = []domain.RevenuePoint{}
	}
	return points, nil
}
