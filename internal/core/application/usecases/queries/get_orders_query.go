// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly and return lightweight response
// structs; they never mutate state.
package queries

import (
	"errors"

	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery or NewGetOrdersByCategoryQuery constructor",
	)
)

// GetOrdersQuery retrieves placed orders, optionally restricted to one
// category. Orders come back with their sold price and rendered description,
// both computed from the persisted snapshots rather than the live catalog.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s — %s\n", o.Description, o.Total.StringFixed(2))
//	}
type GetOrdersQuery struct {
	category    cake.Category
	hasCategory bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query that retrieves every placed order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersByCategoryQuery creates a query restricted to one category.
// The category must be valid.
func NewGetOrdersByCategoryQuery(category cake.Category) (GetOrdersQuery, error) {
	if err := category.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		category:    category,
		hasCategory: true,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Category returns the category filter and whether one is set.
func (q GetOrdersQuery) Category() (cake.Category, bool) {
	return q.category, q.hasCategory
}

// GetOrdersQueryResponse represents one placed order as sold: the identifier,
// the rendered description, and the total the customer paid.
type GetOrdersQueryResponse struct {
	ID          string
	Category    string
	Size        string
	Description string
	Total       decimal.Decimal
}
