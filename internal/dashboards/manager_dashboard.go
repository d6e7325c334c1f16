package dashboards

import (
	"context"
	"sync"

	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/core/domain/services"
)

// recentOrdersLimit caps the manager dashboard's recent order list.
const recentOrdersLimit = 20

// ManagerDashboard gives shop managers a live view of order activity: how
// many orders each category has accumulated and what was placed most
// recently.
//
// Counts are read from the identity generator's per-category counters, which
// point at the next identifier to hand out, so the dashboard subtracts one to
// report orders actually created.
type ManagerDashboard struct {
	ids *services.IdentityGenerator

	mu     sync.RWMutex
	recent []string
}

// NewManagerDashboard creates a dashboard over the given identity generator.
func NewManagerDashboard(ids *services.IdentityGenerator) (*ManagerDashboard, error) {
	if ids == nil {
		return nil, services.ErrNilDependency
	}

	return &ManagerDashboard{ids: ids}, nil
}

// OnOrderPlaced records the order's description in the recent list, evicting
// the oldest entry once the limit is reached.
func (d *ManagerDashboard) OnOrderPlaced(_ context.Context, event OrderPlaced) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.recent = append(d.recent, event.Description)
	if len(d.recent) > recentOrdersLimit {
		d.recent = d.recent[len(d.recent)-recentOrdersLimit:]
	}
}

// OrdersCreated returns how many orders of the category have been created
// since startup.
func (d *ManagerDashboard) OrdersCreated(category cake.Category) (int, error) {
	next, err := d.ids.PeekCount(category)
	if err != nil {
		return 0, err
	}

	return next - 1, nil
}

// RecentOrders returns the most recent order descriptions, oldest first.
func (d *ManagerDashboard) RecentOrders() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, len(d.recent))
	copy(out, d.recent)
	return out
}
