package services

import (
	"errors"

	"cakeshop/internal/core/domain/model/cake"
)

// ErrNilDependency is returned by service constructors when a required
// collaborator is missing.
var ErrNilDependency = errors.New("required dependency is nil")

// CakeFactory creates cake orders. It looks up the base price in the
// pricing catalog and consumes one identifier from the identity generator
// per successfully validated request.
//
// Example:
//
//	factory, _ := services.NewCakeFactory(services.NewPricingCatalog(), services.NewIdentityGenerator())
//	c, err := factory.CreateCake(cake.Chocolate, cake.Large)
//	if err != nil {
//	    // handle validation or lookup failure
//	}
//	fmt.Println(c.Describe()) // Output: Order #CHO-L-001: Chocolate Cake (Large)
type CakeFactory struct {
	catalog *PricingCatalog
	ids     *IdentityGenerator
}

// NewCakeFactory creates a factory over the given catalog and generator.
func NewCakeFactory(catalog *PricingCatalog, ids *IdentityGenerator) (*CakeFactory, error) {
	if catalog == nil || ids == nil {
		return nil, ErrNilDependency
	}

	return &CakeFactory{catalog: catalog, ids: ids}, nil
}

// CreateCake validates the category and size, reads the current base price,
// and materializes a new order with an empty decoration chain.
//
// Validation and the price lookup both happen before the identifier is
// consumed, so a failed call leaves the category's counter unchanged.
// A successful call advances it by exactly one.
func (f *CakeFactory) CreateCake(category cake.Category, size cake.Size) (*cake.Cake, error) {
	if err := errors.Join(category.Validate(), size.Validate()); err != nil {
		return nil, err
	}

	basePrice, err := f.catalog.BasePrice(category, size)
	if err != nil {
		return nil, err
	}

	id, err := f.ids.NextID(category, size)
	if err != nil {
		return nil, err
	}

	return cake.NewCake(id, category, size, basePrice)
}

// DecorateCake applies an add-on to an order. The catalog's current cost and
// display name for the kind are read exactly once and frozen into a snapshot
// appended to the order's chain; later catalog changes do not reach it.
func (f *CakeFactory) DecorateCake(c *cake.Cake, kind cake.DecorationKind) error {
	if err := c.Validate(); err != nil {
		return err
	}

	def, err := f.catalog.DecorationDefault(kind)
	if err != nil {
		return err
	}

	snapshot, err := cake.NewDecoration(def.Name, def.Cost)
	if err != nil {
		return err
	}

	return c.Decorate(snapshot)
}
