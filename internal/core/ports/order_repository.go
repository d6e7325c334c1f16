// Package ports defines the persistence contracts the application layer
// depends on, keeping the domain free of storage concerns.
package ports

import (
	"context"

	"cakeshop/internal/core/domain/model/cake"
)

// OrderRepository defines the persistence contract for cake order
// aggregates. Implementations must persist the order's identity fields and
// its ordered decoration snapshots so the aggregate can be rehydrated
// without consulting the identity generator or pricing catalog.
type OrderRepository interface {
	// Add persists a new order. The order must be valid and not already
	// exist in the repository.
	Add(ctx context.Context, aggregate *cake.Cake) error

	// Update persists changes to an existing order, typically newly
	// appended decoration snapshots.
	Update(ctx context.Context, aggregate *cake.Cake) error

	// Get retrieves an order by its formatted identifier, e.g. "CHO-L-001".
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id string) (*cake.Cake, error)

	// GetAll retrieves every stored order sorted by identifier.
	GetAll(ctx context.Context) ([]*cake.Cake, error)

	// GetAllByCategory retrieves every stored order of one category
	// sorted by identifier.
	GetAllByCategory(ctx context.Context, category cake.Category) ([]*cake.Cake, error)
}
