package dashboards

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSnapshot is the serializable state of a SalesDashboard at one point in
// time.
type SalesSnapshot struct {
	TotalOrders  int                        `json:"total_orders"`
	TotalRevenue decimal.Decimal            `json:"total_revenue"`
	ByCategory   map[string]CategorySummary `json:"by_category"`
	TakenAt      time.Time                  `json:"taken_at"`
}

// CategorySummary holds accumulated figures for one category.
type CategorySummary struct {
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesDashboard accumulates revenue and order counts from OrderPlaced
// events. It only sees orders placed while subscribed; the sales summary
// query is the source of truth across restarts.
type SalesDashboard struct {
	mu           sync.RWMutex
	totalOrders  int
	totalRevenue decimal.Decimal
	byCategory   map[string]CategorySummary
}

// NewSalesDashboard creates an empty sales dashboard.
func NewSalesDashboard() *SalesDashboard {
	return &SalesDashboard{
		totalRevenue: decimal.Zero,
		byCategory:   make(map[string]CategorySummary),
	}
}

// OnOrderPlaced folds one sale into the running totals.
func (d *SalesDashboard) OnOrderPlaced(_ context.Context, event OrderPlaced) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.totalOrders++
	d.totalRevenue = d.totalRevenue.Add(event.Total)

	summary := d.byCategory[event.Category]
	summary.Orders++
	summary.Revenue = summary.Revenue.Add(event.Total)
	d.byCategory[event.Category] = summary
}

// TotalOrders returns the number of orders seen.
func (d *SalesDashboard) TotalOrders() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.totalOrders
}

// TotalRevenue returns the accumulated revenue.
func (d *SalesDashboard) TotalRevenue() decimal.Decimal {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.totalRevenue
}

// Categories returns the category names seen so far, sorted.
func (d *SalesDashboard) Categories() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.byCategory))
	for name := range d.byCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategorySummary returns the accumulated figures for one category.
// The zero summary is returned for categories with no orders.
func (d *SalesDashboard) CategorySummary(category string) CategorySummary {
	d.mu.RLock()
	defer d.mu.RUnlock()

	summary, ok := d.byCategory[category]
	if !ok {
		return CategorySummary{Revenue: decimal.Zero}
	}
	return summary
}

// Snapshot captures the current state for serialization.
func (d *SalesDashboard) Snapshot() SalesSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	byCategory := make(map[string]CategorySummary, len(d.byCategory))
	for name, summary := range d.byCategory {
		byCategory[name] = summary
	}

	return SalesSnapshot{
		TotalOrders:  d.totalOrders,
		TotalRevenue: d.totalRevenue,
		ByCategory:   byCategory,
		TakenAt:      time.Now().UTC(),
	}
}

// SaveSnapshot writes the current state to path as JSON.
func (d *SalesDashboard) SaveSnapshot(path string) error {
	data, err := json.MarshalIndent(d.Snapshot(), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// LoadSnapshot replaces the dashboard state with one previously written by
// SaveSnapshot.
func (d *SalesDashboard) LoadSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var snapshot SalesSnapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.totalOrders = snapshot.TotalOrders
	d.totalRevenue = snapshot.TotalRevenue
	d.byCategory = make(map[string]CategorySummary, len(snapshot.ByCategory))
	for name, summary := range snapshot.ByCategory {
		d.byCategory[name] = summary
	}

	return nil
}
