package commands

import (
	"errors"

	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/pkg/errs"
	"cakeshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSetBasePriceCommandIsNotConstructed = errors.New(
		"SetBasePriceCommand must be created via NewSetBasePriceCommand constructor",
	)
)

// SetBasePriceCommand represents a request to change the catalog's base
// price for one category and size pair. Existing orders keep the price they
// were sold at; only orders placed after the change see the new price.
type SetBasePriceCommand struct { //nolint:recvcheck //using for validation
	category cake.Category
	size     cake.Size
	price    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewSetBasePriceCommand creates a command to update a base price.
// Validates the category and size; a negative price is rejected here so the
// catalog is never asked to store one.
func NewSetBasePriceCommand(
	category cake.Category,
	size cake.Size,
	price decimal.Decimal,
) (SetBasePriceCommand, error) {
	cmd := SetBasePriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategory(category),
		cmd.setSize(size),
		cmd.setPrice(price),
	); err != nil {
		return SetBasePriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetBasePriceCommand) Validate() error {
	return c.guard.Validate(ErrSetBasePriceCommandIsNotConstructed)
}

// Category returns the category whose price changes.
func (c SetBasePriceCommand) Category() cake.Category {
	return c.category
}

// Size returns the size tier whose price changes.
func (c SetBasePriceCommand) Size() cake.Size {
	return c.size
}

// Price returns the new base price.
func (c SetBasePriceCommand) Price() decimal.Decimal {
	return c.price
}

func (c *SetBasePriceCommand) setCategory(category cake.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *SetBasePriceCommand) setSize(size cake.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *SetBasePriceCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0", "unbounded")
	}

	c.price = price
	return nil
}
