package cake

import (
	"errors"
	"fmt"
	"strings"

	"cakeshop/internal/core/domain/model/kernel"
	"cakeshop/internal/pkg/errs"
)

// ErrCakeIsNotConstructed is returned when a Cake instance was not created
// through the NewCake or RestoreCake factory methods. This ensures all
// orders are properly validated.
var ErrCakeIsNotConstructed = errors.New("Cake must be created via NewCake or RestoreCake constructor")

// Cake represents a single cake order: a base product plus zero or more
// decoration snapshots. It is the aggregate root of the ordering domain.
//
// Cake follows these invariants:
//   - Identity fields (id, category, size, base price) are set at creation
//     and never change
//   - The decoration chain is append-only; insertion order is display order
//   - Each decoration is a snapshot, immune to later catalog changes
//   - Can only be created through NewCake or RestoreCake
//
// Total cost and description are derived views computed on demand; the
// aggregate holds no rendered state, so both are idempotent.
type Cake struct {
	// id is the formatted order identifier, e.g. "CHO-L-001"
	id string

	// category is the base product kind
	category Category

	// size is the size tier
	size Size

	// basePrice is the base price frozen at creation time
	basePrice kernel.Money

	// decorations is the ordered, append-only chain of add-on snapshots
	decorations []Decoration

	// isConstructed ensures the cake was created via a constructor
	isConstructed bool
}

// NewCake creates a new Cake order with an empty decoration chain.
// This is how the factory materializes a freshly placed order.
//
// Parameters:
//   - id: formatted order identifier (must be non-empty)
//   - category: base product kind (must be a valid Category)
//   - size: size tier (must be a valid Size)
//   - basePrice: base price at creation time (must be constructed Money)
//
// Example:
//
//	price, _ := kernel.NewMoneyFromFloat(15.00)
//	c, err := cake.NewCake("CHO-L-001", cake.Chocolate, cake.Large, price)
//	if err != nil {
//	    // handle validation error
//	}
func NewCake(id string, category Category, size Size, basePrice kernel.Money) (*Cake, error) {
	c := &Cake{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setCategory(category),
		c.setSize(size),
		c.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCake reconstructs a Cake from its persisted structural form:
// identity fields plus the ordered decoration snapshots. It never consults
// the identity generator or the pricing catalog, so rehydrating old orders
// neither consumes counters nor picks up current prices.
func RestoreCake(
	id string,
	category Category,
	size Size,
	basePrice kernel.Money,
	decorations []Decoration,
) (*Cake, error) {
	c, err := NewCake(id, category, size, basePrice)
	if err != nil {
		return nil, err
	}

	for _, d := range decorations {
		if decErr := c.Decorate(d); decErr != nil {
			return nil, decErr
		}
	}

	return c, nil
}

// Validate ensures the Cake instance was properly constructed.
// Returns ErrCakeIsNotConstructed otherwise. Call this when receiving
// aggregates across a trust boundary, e.g. from persistence.
func (c *Cake) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCakeIsNotConstructed
	}

	return nil
}

// IsEqual compares two cakes by their order identifiers.
func (c *Cake) IsEqual(other *Cake) bool {
	return other != nil && c.id == other.id
}

// ID returns the formatted order identifier.
func (c *Cake) ID() string {
	return c.id
}

// Category returns the base product kind.
func (c *Cake) Category() Category {
	return c.category
}

// Size returns the size tier.
func (c *Cake) Size() Size {
	return c.size
}

// BasePrice returns the base price frozen at creation time.
func (c *Cake) BasePrice() kernel.Money {
	return c.basePrice
}

// Decorations returns a copy of the decoration chain in application order.
// The copy keeps the chain append-only: callers cannot reorder or drop
// snapshots behind the aggregate's back.
func (c *Cake) Decorations() []Decoration {
	out := make([]Decoration, len(c.decorations))
	copy(out, c.decorations)
	return out
}

// Decorate appends a decoration snapshot to the end of the chain.
// There is no removal or reordering operation.
func (c *Cake) Decorate(d Decoration) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	c.decorations = append(c.decorations, d)
	return nil
}

// TotalCost returns the base price plus the sum of all decoration snapshot
// costs. Snapshots keep the cost they had when applied, so later catalog
// changes do not affect the result.
func (c *Cake) TotalCost() (kernel.Money, error) {
	if err := c.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total := c.basePrice
	for _, d := range c.decorations {
		sum, err := total.Add(d.Cost())
		if err != nil {
			return kernel.Money{}, err
		}
		total = sum
	}

	return total, nil
}

// Describe renders the order as a human-readable sentence:
//
//	Order #CHO-L-001: Chocolate Cake (Large)
//	Order #CHO-L-001: Chocolate Cake (Large) with Cream
//	Order #CHO-L-001: Chocolate Cake (Large) with Cream and Skittles
//	Order #CHO-L-001: Chocolate Cake (Large) with Cream, Skittles, and Chocolate Chips
//
// Grammar is derived solely from the length of the decoration chain, never
// by inspecting previously rendered text, so display names containing
// "with" or "and" cannot confuse the formatter. Calling Describe twice on
// an unmodified cake yields identical strings.
func (c *Cake) Describe() string {
	base := fmt.Sprintf("Order #%s: %s (%s)", c.id, c.category.DisplayName(), c.size.DisplayName())
	if len(c.decorations) == 0 {
		return base
	}

	names := make([]string, len(c.decorations))
	for i, d := range c.decorations {
		names[i] = d.Name()
	}

	return base + " with " + joinNames(names)
}

// joinNames joins a non-empty name list into an English enumeration:
// "A", "A and B", or "A, B, and C" (Oxford comma from three items up).
func joinNames(names []string) string {
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

// setID validates and sets the order identifier.
// This is a private method used only during construction.
func (c *Cake) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	c.id = id
	return nil
}

// setCategory validates and sets the base product kind.
// This is a private method used only during construction.
func (c *Cake) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

// setSize validates and sets the size tier.
// This is a private method used only during construction.
func (c *Cake) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.size = size
	return nil
}

// setBasePrice validates and sets the base price.
// This is a private method used only during construction.
func (c *Cake) setBasePrice(basePrice kernel.Money) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}
	c.basePrice = basePrice
	return nil
}
