package kafka

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryUpdatedEvent is published after every inventory quantity overwrite
type InventoryUpdatedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	InventoryID uint      `json:"inventory_id"`
	ProductID   uint      `json:"product_id"`
	Quantity    int       `json:"quantity"`
	LowStock    bool      `json:"low_stock"`
	Timestamp   time.Time `json:"timestamp"`
}

// SaleSubmittedEvent asks the service to record a sale. SaleDate may be
// omitted to record the sale at consumption time.
type SaleSubmittedEvent struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	ProductID    uint            `json:"product_id"`
	QuantitySold int             `json:"quantity_sold"`
	SaleDate     *time.Time      `json:"sale_date,omitempty"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Event types
const (
	EventTypeInventoryUpdated = "inventory.updated"
	EventTypeSaleSubmitted    = "sale.submitted"
)

// Kafka topics
const (
	TopicInventoryUpdated = "inventory-updated"
	TopicSalesSubmitted   = "sales-submitted"
)
