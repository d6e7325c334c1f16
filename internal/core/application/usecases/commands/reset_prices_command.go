package commands

import (
	"errors"

	"cakeshop/internal/pkg/guard"
)

var (
	ErrResetPricesCommandIsNotConstructed = errors.New(
		"ResetPricesCommand must be created via NewResetPricesCommand constructor",
	)
)

// ResetPricesCommand represents a request to restore the catalog's built-in
// default base prices. Decoration defaults and order counters are not
// affected.
type ResetPricesCommand struct {
	guard guard.ConstructorGuard
}

// NewResetPricesCommand creates a parameterless reset command.
func NewResetPricesCommand() ResetPricesCommand {
	return ResetPricesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ResetPricesCommand) Validate() error {
	return c.guard.Validate(ErrResetPricesCommandIsNotConstructed)
}
