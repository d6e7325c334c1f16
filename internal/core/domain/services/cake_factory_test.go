package services_test

import (
	"testing"

	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/core/domain/services"
	"cakeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T) (*services.CakeFactory, *services.PricingCatalog, *services.IdentityGenerator) {
	t.Helper()
	catalog := services.NewPricingCatalog()
	ids := services.NewIdentityGenerator()
	factory, err := services.NewCakeFactory(catalog, ids)
	require.NoError(t, err)
	return factory, catalog, ids
}

func TestNewCakeFactory(t *testing.T) {
	t.Run("should fail with nil dependencies", func(t *testing.T) {
		_, err := services.NewCakeFactory(nil, services.NewIdentityGenerator())
		require.ErrorIs(t, err, services.ErrNilDependency)

		_, err = services.NewCakeFactory(services.NewPricingCatalog(), nil)
		require.ErrorIs(t, err, services.ErrNilDependency)
	})
}

func TestCakeFactory_CreateCake(t *testing.T) {
	t.Run("should create order with catalog price and generated id", func(t *testing.T) {
		factory, _, _ := newFactory(t)

		c, err := factory.CreateCake(cake.Chocolate, cake.Large)

		require.NoError(t, err)
		assert.Equal(t, "CHO-L-001", c.ID())
		assert.Equal(t, "15.00", c.BasePrice().String())
		assert.Empty(t, c.Decorations())
		assert.Equal(t, "Order #CHO-L-001: Chocolate Cake (Large)", c.Describe())
	})

	t.Run("two orders should differ only in trailing counter", func(t *testing.T) {
		factory, _, _ := newFactory(t)

		first, err := factory.CreateCake(cake.Cheese, cake.Medium)
		require.NoError(t, err)
		second, err := factory.CreateCake(cake.Cheese, cake.Medium)
		require.NoError(t, err)

		assert.Equal(t, "CHE-M-001", first.ID())
		assert.Equal(t, "CHE-M-002", second.ID())
	})

	t.Run("should fail with invalid category before consuming a counter", func(t *testing.T) {
		factory, _, ids := newFactory(t)

		_, err := factory.CreateCake(cake.UnknownCategory, cake.Large)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		for _, category := range cake.Categories() {
			count, countErr := ids.PeekCount(category)
			require.NoError(t, countErr)
			assert.Equal(t, 1, count)
		}
	})

	t.Run("should fail with invalid size before consuming a counter", func(t *testing.T) {
		factory, _, ids := newFactory(t)

		_, err := factory.CreateCake(cake.Apple, cake.UnknownSize)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		count, countErr := ids.PeekCount(cake.Apple)
		require.NoError(t, countErr)
		assert.Equal(t, 1, count)
	})

	t.Run("should pick up catalog price changes for new orders only", func(t *testing.T) {
		factory, catalog, _ := newFactory(t)

		before, err := factory.CreateCake(cake.Apple, cake.Small)
		require.NoError(t, err)
		require.NoError(t, catalog.SetBasePrice(cake.Apple, cake.Small, decimal.NewFromFloat(9.00)))
		after, err := factory.CreateCake(cake.Apple, cake.Small)
		require.NoError(t, err)

		assert.Equal(t, "8.00", before.BasePrice().String())
		assert.Equal(t, "9.00", after.BasePrice().String())
	})
}

func TestCakeFactory_DecorateCake(t *testing.T) {
	t.Run("should freeze catalog values into the snapshot", func(t *testing.T) {
		factory, catalog, _ := newFactory(t)
		c, err := factory.CreateCake(cake.Chocolate, cake.Large)
		require.NoError(t, err)

		require.NoError(t, factory.DecorateCake(c, cake.Cream))
		require.NoError(t, catalog.SetDecorationCost(cake.Cream, decimal.NewFromFloat(5.00)))
		require.NoError(t, catalog.SetDecorationName(cake.Cream, "Premium Cream"))

		// Snapshot keeps the values it was sold under.
		total, err := c.TotalCost()
		require.NoError(t, err)
		assert.Equal(t, "17.00", total.String())
		assert.Equal(t, "Order #CHO-L-001: Chocolate Cake (Large) with Cream", c.Describe())

		// New snapshots see the updated catalog.
		require.NoError(t, factory.DecorateCake(c, cake.Cream))
		total, err = c.TotalCost()
		require.NoError(t, err)
		assert.Equal(t, "22.00", total.String())
		assert.Contains(t, c.Describe(), "Cream and Premium Cream")
	})

	t.Run("should fail with unknown kind", func(t *testing.T) {
		factory, _, _ := newFactory(t)
		c, err := factory.CreateCake(cake.Apple, cake.Small)
		require.NoError(t, err)

		err = factory.DecorateCake(c, cake.UnknownDecoration)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Empty(t, c.Decorations())
	})

	t.Run("should fail with nil cake", func(t *testing.T) {
		factory, _, _ := newFactory(t)

		err := factory.DecorateCake(nil, cake.Cream)

		require.Error(t, err)
	})
}

func TestCakeFactory_ReferenceScenario(t *testing.T) {
	t.Run("chocolate large with cream skittles and chocolate chips totals 21.00", func(t *testing.T) {
		factory, _, _ := newFactory(t)

		c, err := factory.CreateCake(cake.Chocolate, cake.Large)
		require.NoError(t, err)
		require.NoError(t, factory.DecorateCake(c, cake.Cream))
		require.NoError(t, factory.DecorateCake(c, cake.Skittles))
		require.NoError(t, factory.DecorateCake(c, cake.ChocolateChips))

		assert.Equal(t, "CHO-L-001", c.ID())
		assert.Equal(t,
			"Order #CHO-L-001: Chocolate Cake (Large) with Cream, Skittles, and Chocolate Chips",
			c.Describe())

		total, err := c.TotalCost()
		require.NoError(t, err)
		assert.Equal(t, "21.00", total.String())
	})
}
