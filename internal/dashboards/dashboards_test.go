package dashboards_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/core/domain/model/kernel"
	"cakeshop/internal/core/domain/services"
	"cakeshop/internal/dashboards"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedEvent(t *testing.T, category string, total float64) dashboards.OrderPlaced {
	t.Helper()
	return dashboards.OrderPlaced{
		EventID:     uuid.New(),
		OrderID:     "CHO-L-001",
		Category:    category,
		Description: "Order #CHO-L-001: Chocolate Cake (Large)",
		Total:       decimal.NewFromFloat(total),
		PlacedAt:    time.Now().UTC(),
	}
}

type recordingSubscriber struct {
	mu     sync.Mutex
	events []dashboards.OrderPlaced
}

func (s *recordingSubscriber) OnOrderPlaced(_ context.Context, event dashboards.OrderPlaced) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func TestPublisher_NotifyOrderPlaced(t *testing.T) {
	t.Run("should deliver event to all subscribers in order", func(t *testing.T) {
		publisher := dashboards.NewPublisher()
		first := &recordingSubscriber{}
		second := &recordingSubscriber{}
		publisher.Subscribe(first)
		publisher.Subscribe(second)

		price, err := kernel.NewMoneyFromFloat(15.00)
		require.NoError(t, err)
		placed, err := cake.NewCake("CHO-L-001", cake.Chocolate, cake.Large, price)
		require.NoError(t, err)

		publisher.NotifyOrderPlaced(t.Context(), placed)

		require.Len(t, first.events, 1)
		require.Len(t, second.events, 1)
		event := first.events[0]
		assert.Equal(t, "CHO-L-001", event.OrderID)
		assert.Equal(t, "Chocolate", event.Category)
		assert.Equal(t, "Order #CHO-L-001: Chocolate Cake (Large)", event.Description)
		assert.Equal(t, "15.00", event.Total.StringFixed(2))
		assert.NotEqual(t, uuid.Nil, event.EventID)
		assert.False(t, event.PlacedAt.IsZero())
	})

	t.Run("should ignore nil order", func(t *testing.T) {
		publisher := dashboards.NewPublisher()
		subscriber := &recordingSubscriber{}
		publisher.Subscribe(subscriber)

		publisher.NotifyOrderPlaced(t.Context(), nil)

		assert.Empty(t, subscriber.events)
	})

	t.Run("should tolerate having no subscribers", func(t *testing.T) {
		publisher := dashboards.NewPublisher()

		price, err := kernel.NewMoneyFromFloat(8.00)
		require.NoError(t, err)
		placed, err := cake.NewCake("APP-S-001", cake.Apple, cake.Small, price)
		require.NoError(t, err)

		publisher.NotifyOrderPlaced(t.Context(), placed)
	})
}

func TestSalesDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("should accumulate totals per category", func(t *testing.T) {
		dashboard := dashboards.NewSalesDashboard()

		dashboard.OnOrderPlaced(ctx, placedEvent(t, "apple", 8.00))
		dashboard.OnOrderPlaced(ctx, placedEvent(t, "apple", 14.00))
		dashboard.OnOrderPlaced(ctx, placedEvent(t, "chocolate", 17.50))

		assert.Equal(t, 3, dashboard.TotalOrders())
		assert.Equal(t, "39.50", dashboard.TotalRevenue().StringFixed(2))
		assert.Equal(t, []string{"apple", "chocolate"}, dashboard.Categories())

		apple := dashboard.CategorySummary("apple")
		assert.Equal(t, 2, apple.Orders)
		assert.Equal(t, "22.00", apple.Revenue.StringFixed(2))
	})

	t.Run("should return zero summary for unseen category", func(t *testing.T) {
		dashboard := dashboards.NewSalesDashboard()

		summary := dashboard.CategorySummary("cheese")

		assert.Equal(t, 0, summary.Orders)
		assert.True(t, summary.Revenue.Equal(decimal.Zero))
	})

	t.Run("should survive a snapshot round trip", func(t *testing.T) {
		dashboard := dashboards.NewSalesDashboard()
		dashboard.OnOrderPlaced(ctx, placedEvent(t, "cheese", 12.50))
		dashboard.OnOrderPlaced(ctx, placedEvent(t, "apple", 10.00))

		path := filepath.Join(t.TempDir(), "sales.json")
		require.NoError(t, dashboard.SaveSnapshot(path))

		restored := dashboards.NewSalesDashboard()
		require.NoError(t, restored.LoadSnapshot(path))

		assert.Equal(t, 2, restored.TotalOrders())
		assert.Equal(t, "22.50", restored.TotalRevenue().StringFixed(2))
		assert.Equal(t, 1, restored.CategorySummary("cheese").Orders)
		assert.Equal(t, "12.50", restored.CategorySummary("cheese").Revenue.StringFixed(2))
	})

	t.Run("should fail loading a missing snapshot", func(t *testing.T) {
		dashboard := dashboards.NewSalesDashboard()

		err := dashboard.LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
	})
}

func TestManagerDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("should report orders created from generator counters", func(t *testing.T) {
		ids := services.NewIdentityGenerator()
		dashboard, err := dashboards.NewManagerDashboard(ids)
		require.NoError(t, err)

		created, err := dashboard.OrdersCreated(cake.Chocolate)
		require.NoError(t, err)
		assert.Equal(t, 0, created)

		_, err = ids.NextID(cake.Chocolate, cake.Large)
		require.NoError(t, err)
		_, err = ids.NextID(cake.Chocolate, cake.Small)
		require.NoError(t, err)

		created, err = dashboard.OrdersCreated(cake.Chocolate)
		require.NoError(t, err)
		assert.Equal(t, 2, created)

		created, err = dashboard.OrdersCreated(cake.Apple)
		require.NoError(t, err)
		assert.Equal(t, 0, created)
	})

	t.Run("should keep recent order descriptions oldest first", func(t *testing.T) {
		dashboard, err := dashboards.NewManagerDashboard(services.NewIdentityGenerator())
		require.NoError(t, err)

		first := placedEvent(t, "apple", 8.00)
		first.Description = "Order #APP-S-001: Apple Cake (Small)"
		second := placedEvent(t, "cheese", 12.50)
		second.Description = "Order #CHE-M-001: Cheese Cake (Medium)"

		dashboard.OnOrderPlaced(ctx, first)
		dashboard.OnOrderPlaced(ctx, second)

		assert.Equal(t, []string{
			"Order #APP-S-001: Apple Cake (Small)",
			"Order #CHE-M-001: Cheese Cake (Medium)",
		}, dashboard.RecentOrders())
	})

	t.Run("should fail with invalid category", func(t *testing.T) {
		dashboard, err := dashboards.NewManagerDashboard(services.NewIdentityGenerator())
		require.NoError(t, err)

		_, err = dashboard.OrdersCreated(cake.UnknownCategory)

		require.Error(t, err)
	})

	t.Run("should fail without a generator", func(t *testing.T) {
		_, err := dashboards.NewManagerDashboard(nil)

		require.ErrorIs(t, err, services.ErrNilDependency)
	})
}
