package services

import (
	"fmt"
	"sync"

	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/core/domain/model/kernel"
	"cakeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DecorationDefault is the catalog's current definition of an add-on kind:
// the cost and display name that will be frozen into a snapshot when the
// add-on is next applied to an order.
type DecorationDefault struct {
	Name string
	Cost kernel.Money
}

// PricingCatalog is the shop's mutable pricing table. It maps
// (category, size) pairs to base prices and decoration kinds to their
// current cost and display name.
//
// The catalog is process-wide shared state; a mutex serializes mutators and
// lookups so the service can take orders concurrently. Changing an entry
// affects only orders and decorations created afterwards — already-placed
// orders hold snapshots, not references into the catalog.
//
// Example:
//
//	catalog := services.NewPricingCatalog()
//	price, err := catalog.BasePrice(cake.Chocolate, cake.Large)
//	if err != nil {
//	    // handle lookup failure
//	}
//	fmt.Println(price) // Output: 15.00
type PricingCatalog struct {
	mu sync.RWMutex

	basePrices  map[cake.Category]map[cake.Size]kernel.Money
	decorations map[cake.DecorationKind]DecorationDefault
}

// NewPricingCatalog creates a catalog populated with the built-in defaults:
//
//	Apple Cake:     Small 8.00,  Medium 10.00, Large 12.00
//	Cheese Cake:    Small 10.50, Medium 12.50, Large 15.00
//	Chocolate Cake: Small 10.50, Medium 12.50, Large 15.00
//
//	Chocolate Chips 2.50, Cream 2.00, Skittles 1.50
func NewPricingCatalog() *PricingCatalog {
	c := &PricingCatalog{
		basePrices:  defaultBasePrices(),
		decorations: defaultDecorations(),
	}
	return c
}

// BasePrice returns the current base price for a category and size pair.
// Returns an ObjectNotFoundError if the catalog has no entry for the pair.
func (c *PricingCatalog) BasePrice(category cake.Category, size cake.Size) (kernel.Money, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sizePrices, ok := c.basePrices[category]
	if !ok {
		return kernel.Money{}, errs.NewObjectNotFoundError("category", category.String())
	}

	price, ok := sizePrices[size]
	if !ok {
		return kernel.Money{}, errs.NewObjectNotFoundError("base price",
			fmt.Sprintf("%s/%s", category, size))
	}

	return price, nil
}

// SetBasePrice updates the base price for a category and size pair.
// A negative price is rejected with a validation error and the previous
// price stays in place. Only orders created after the update see the new
// price.
func (c *PricingCatalog) SetBasePrice(category cake.Category, size cake.Size, price decimal.Decimal) error {
	money, err := kernel.NewMoney(price)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sizePrices, ok := c.basePrices[category]
	if !ok {
		return errs.NewObjectNotFoundError("category", category.String())
	}
	if _, ok = sizePrices[size]; !ok {
		return errs.NewObjectNotFoundError("base price",
			fmt.Sprintf("%s/%s", category, size))
	}

	sizePrices[size] = money
	return nil
}

// ResetToDefaults restores the built-in default base price table.
// Decoration defaults are left untouched, as are the identity generator's
// counters — reset affects prices only.
func (c *PricingCatalog) ResetToDefaults() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.basePrices = defaultBasePrices()
}

// DecorationDefault returns the current cost and display name for an add-on
// kind. Returns an ObjectNotFoundError for a kind the catalog does not
// carry, including invalid enumerants.
func (c *PricingCatalog) DecorationDefault(kind cake.DecorationKind) (DecorationDefault, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.decorations[kind]
	if !ok {
		return DecorationDefault{}, errs.NewObjectNotFoundError("decoration kind", kind.String())
	}

	return def, nil
}

// SetDecorationCost updates the current cost of an add-on kind.
// A negative cost is rejected with a validation error and the previous cost
// stays in place. Snapshots already applied to orders are unaffected.
func (c *PricingCatalog) SetDecorationCost(kind cake.DecorationKind, cost decimal.Decimal) error {
	money, err := kernel.NewMoney(cost)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	def, ok := c.decorations[kind]
	if !ok {
		return errs.NewObjectNotFoundError("decoration kind", kind.String())
	}

	def.Cost = money
	c.decorations[kind] = def
	return nil
}

// SetDecorationName updates the display name of an add-on kind.
// An empty name is rejected with a validation error. Snapshots already
// applied to orders keep the name they were sold under.
func (c *PricingCatalog) SetDecorationName(kind cake.DecorationKind, name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	def, ok := c.decorations[kind]
	if !ok {
		return errs.NewObjectNotFoundError("decoration kind", kind.String())
	}

	def.Name = name
	c.decorations[kind] = def
	return nil
}

func defaultBasePrices() map[cake.Category]map[cake.Size]kernel.Money {
	return map[cake.Category]map[cake.Size]kernel.Money{
		cake.Apple: {
			cake.Small:  mustMoney(8.00),
			cake.Medium: mustMoney(10.00),
			cake.Large:  mustMoney(12.00),
		},
		cake.Cheese: {
			cake.Small:  mustMoney(10.50),
			cake.Medium: mustMoney(12.50),
			cake.Large:  mustMoney(15.00),
		},
		cake.Chocolate: {
			cake.Small:  mustMoney(10.50),
			cake.Medium: mustMoney(12.50),
			cake.Large:  mustMoney(15.00),
		},
	}
}

func defaultDecorations() map[cake.DecorationKind]DecorationDefault {
	return map[cake.DecorationKind]DecorationDefault{
		cake.ChocolateChips: {Name: "Chocolate Chips", Cost: mustMoney(2.50)},
		cake.Cream:          {Name: "Cream", Cost: mustMoney(2.00)},
		cake.Skittles:       {Name: "Skittles", Cost: mustMoney(1.50)},
	}
}

// mustMoney builds the default tables. It panics only on a negative
// constant, which would be a programming error in the defaults themselves.
func mustMoney(amount float64) kernel.Money {
	m, err := kernel.NewMoneyFromFloat(amount)
	if err != nil {
		panic(err)
	}
	return m
}
