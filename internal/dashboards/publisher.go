package dashboards

import (
	"context"
	"sync"
	"time"

	"cakeshop/internal/core/domain/model/cake"

	"github.com/google/uuid"
)

// Subscriber receives order placed events. Implementations must be safe for
// concurrent calls; the publisher invokes them synchronously on the placing
// goroutine.
type Subscriber interface {
	OnOrderPlaced(ctx context.Context, event OrderPlaced)
}

// Publisher fans OrderPlaced events out to subscribed dashboards. It
// implements the notifier interface the order placement handler expects, so
// the application core stays unaware of which dashboards exist.
type Publisher struct {
	mu          sync.RWMutex
	subscribers []Subscriber
}

// NewPublisher creates a publisher with no subscribers.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Subscribe registers a dashboard. Subscribers receive events published after
// registration; there is no unsubscribe.
func (p *Publisher) Subscribe(s Subscriber) {
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, s)
}

// NotifyOrderPlaced renders the committed order into an OrderPlaced event and
// delivers it to every subscriber in registration order.
func (p *Publisher) NotifyOrderPlaced(ctx context.Context, placed *cake.Cake) {
	if placed == nil {
		return
	}

	total, err := placed.TotalCost()
	if err != nil {
		return
	}

	event := OrderPlaced{
		EventID:     uuid.New(),
		OrderID:     placed.ID(),
		Category:    placed.Category().String(),
		Description: placed.Describe(),
		Total:       total.Decimal(),
		PlacedAt:    time.Now().UTC(),
	}

	p.mu.RLock()
	subscribers := make([]Subscriber, len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.RUnlock()

	for _, s := range subscribers {
		s.OnOrderPlaced(ctx, event)
	}
}
