package queries

import (
	"errors"

	"cakeshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetSalesSummaryQueryIsNotConstructed = errors.New(
		"GetSalesSummaryQuery must be created via NewGetSalesSummaryQuery constructor",
	)
)

// GetSalesSummaryQuery retrieves per-category sales figures across all
// placed orders. Revenue is computed from the persisted price snapshots, so
// later catalog changes never rewrite history.
type GetSalesSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSalesSummaryQuery creates a parameterless sales summary query.
func NewGetSalesSummaryQuery() GetSalesSummaryQuery {
	return GetSalesSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSalesSummaryQueryIsNotConstructed if validation fails.
func (q GetSalesSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesSummaryQueryIsNotConstructed)
}

// CategorySales holds the order count and revenue for one category.
type CategorySales struct {
	Category string
	Orders   int
	Revenue  decimal.Decimal
}

// GetSalesSummaryQueryResponse aggregates sales across all categories.
// Categories with no orders are omitted.
type GetSalesSummaryQueryResponse struct {
	Categories   []CategorySales
	TotalOrders  int
	TotalRevenue decimal.Decimal
}
