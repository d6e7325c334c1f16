package commands

import (
	"context"

	"cakeshop/internal/core/domain/services"
)

// SetBasePriceCommandHandler applies base price changes to the pricing
// catalog. The catalog is in-process state, so no unit of work is involved.
type SetBasePriceCommandHandler struct {
	catalog *services.PricingCatalog
}

// NewSetBasePriceCommandHandler creates a handler over the given catalog.
func NewSetBasePriceCommandHandler(catalog *services.PricingCatalog) (SetBasePriceCommandHandler, error) {
	if catalog == nil {
		return SetBasePriceCommandHandler{}, services.ErrNilDependency
	}

	return SetBasePriceCommandHandler{catalog: catalog}, nil
}

// Handle validates the command and writes the new price to the catalog.
// The previous price stays in place on any failure.
func (h *SetBasePriceCommandHandler) Handle(_ context.Context, cmd SetBasePriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.catalog.SetBasePrice(cmd.Category(), cmd.Size(), cmd.Price())
}
