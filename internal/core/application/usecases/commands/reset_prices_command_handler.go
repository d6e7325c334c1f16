package commands

import (
	"context"

	"cakeshop/internal/core/domain/services"
)

// ResetPricesCommandHandler restores the catalog's default base prices.
type ResetPricesCommandHandler struct {
	catalog *services.PricingCatalog
}

// NewResetPricesCommandHandler creates a handler over the given catalog.
func NewResetPricesCommandHandler(catalog *services.PricingCatalog) (ResetPricesCommandHandler, error) {
	if catalog == nil {
		return ResetPricesCommandHandler{}, services.ErrNilDependency
	}

	return ResetPricesCommandHandler{catalog: catalog}, nil
}

// Handle validates the command and resets base prices to their defaults.
func (h *ResetPricesCommandHandler) Handle(_ context.Context, cmd ResetPricesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.catalog.ResetToDefaults()
	return nil
}
