// Package events records sales submitted through Kafka.
package events

import (
	"context"
	"fmt"

	"github.com/tair/sales-insights/internal/sales/usecase/command"
	"github.com/tair/sales-insights/kafka"
)

// NewSaleSubmittedHandler turns sale.submitted events into recorded sales
func NewSaleSubmittedHandler(record *command.RecordSaleHandler) kafka.EventHandler {
	return func(ctx context.Context, event kafka.SaleSubmittedEvent) error {
		cmd := command.RecordSaleCommand{
			ProductID:    event.ProductID,
			QuantitySold: event.QuantitySold,
			TotalRevenue: event.TotalRevenue,
		}
		if event.SaleDate != nil {
			cmd.SaleDate = event.SaleDate.UTC()
		}

		if _, err := record.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("record submitted sale %s: %w", event.EventID, err)
		}
		return nil
	}
}
