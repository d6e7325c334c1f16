package commands

import (
	"context"

	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/core/domain/services"
)

// OrderPlacedNotifier receives successfully placed orders after they have
// been committed. Dashboards subscribe behind this interface; notification
// failures are the notifier's concern and never roll back the order.
type OrderPlacedNotifier interface {
	NotifyOrderPlaced(ctx context.Context, placed *cake.Cake)
}

// PlaceOrderCommandHandler is the single order router: it sequences order
// creation, decoration, persistence, and notification for one request.
//
// Example:
//
//	handler, _ := NewPlaceOrderCommandHandler(uowFactory, factory, publisher)
//	cmd, _ := NewPlaceOrderCommand(cake.Chocolate, cake.Large,
//	    []cake.DecorationKind{cake.Cream})
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	factory    *services.CakeFactory
	notifier   OrderPlacedNotifier
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a unit of work factory for transactional persistence, the cake
// factory for creation and decoration, and a notifier for dashboards.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	factory *services.CakeFactory,
	notifier OrderPlacedNotifier,
) (PlaceOrderCommandHandler, error) {
	if uowFactory == nil || factory == nil || notifier == nil {
		return PlaceOrderCommandHandler{}, services.ErrNilDependency
	}

	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
		notifier:   notifier,
	}, nil
}

// Handle processes the order placement command: creates the base order,
// applies the requested decorations in order, persists the aggregate, and
// notifies dashboards once the transaction commits.
//
// The command's full validation runs before the factory consumes an order
// identifier, so rejected requests leave the per-category counters
// unchanged.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*cake.Cake, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := h.factory.CreateCake(cmd.Category(), cmd.Size())
	if err != nil {
		return nil, err
	}

	for _, kind := range cmd.Decorations() {
		if decErr := h.factory.DecorateCake(placed, kind); decErr != nil {
			return nil, decErr
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyOrderPlaced(ctx, placed)
	return placed, nil
}
