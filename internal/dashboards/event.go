// Package dashboards implements in-process observers for placed orders.
// A Publisher fans committed orders out to subscribed dashboards, which keep
// their own running views. Dashboards observe; they never mutate orders.
package dashboards

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderPlaced is the event published once an order has been committed.
// It carries a rendered snapshot of the sale, so subscribers never reach back
// into the aggregate or the live catalog.
type OrderPlaced struct {
	EventID     uuid.UUID       `json:"event_id"`
	OrderID     string          `json:"order_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
	PlacedAt    time.Time       `json:"placed_at"`
}
