package commands

import (
	"errors"

	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place a new cake order:
// a base product with zero or more decorations applied in request order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(cake.Chocolate, cake.Large,
//	    []cake.DecorationKind{cake.Cream, cake.Skittles})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Println(placed.Describe())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	category    cake.Category
	size        cake.Size
	decorations []cake.DecorationKind

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a cake order.
// Validates that category, size, and every requested decoration kind are
// members of their closed enumerations. The decorations slice may be empty.
func NewPlaceOrderCommand(
	category cake.Category,
	size cake.Size,
	decorations []cake.DecorationKind,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategory(category),
		cmd.setSize(size),
		cmd.setDecorations(decorations),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Category returns the requested base product kind.
func (c PlaceOrderCommand) Category() cake.Category {
	return c.category
}

// Size returns the requested size tier.
func (c PlaceOrderCommand) Size() cake.Size {
	return c.size
}

// Decorations returns the requested decoration kinds in application order.
func (c PlaceOrderCommand) Decorations() []cake.DecorationKind {
	out := make([]cake.DecorationKind, len(c.decorations))
	copy(out, c.decorations)
	return out
}

func (c *PlaceOrderCommand) setCategory(category cake.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *PlaceOrderCommand) setSize(size cake.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *PlaceOrderCommand) setDecorations(decorations []cake.DecorationKind) error {
	for _, kind := range decorations {
		if err := kind.Validate(); err != nil {
			return err
		}
	}

	c.decorations = make([]cake.DecorationKind, len(decorations))
	copy(c.decorations, decorations)
	return nil
}
