package queries

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSalesSummaryQueryHandler aggregates placed orders into per-category
// sales figures. It rehydrates the same aggregates the listing query uses,
// so a cake's contribution to revenue always equals the total it was sold at.
type GetSalesSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesSummaryQueryHandler creates a handler for sales summary queries.
// Requires a GORM database connection for query execution.
func NewGetSalesSummaryQueryHandler(db *gorm.DB) GetSalesSummaryQueryHandler {
	return GetSalesSummaryQueryHandler{db: db}
}

// Handle executes the query and returns per-category counts and revenue plus
// grand totals. Categories are sorted by name for consistent output.
func (h GetSalesSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetSalesSummaryQuery,
) (GetSalesSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesSummaryQueryResponse{}, err
	}

	cakes, err := loadCakes(ctx, h.db, NewGetOrdersQuery())
	if err != nil {
		return GetSalesSummaryQueryResponse{}, err
	}

	byCategory := make(map[string]*CategorySales)
	response := GetSalesSummaryQueryResponse{
		Categories:   make([]CategorySales, 0),
		TotalRevenue: decimal.Zero,
	}

	for _, c := range cakes {
		total, totalErr := c.TotalCost()
		if totalErr != nil {
			return GetSalesSummaryQueryResponse{}, totalErr
		}

		name := c.Category().String()
		sales, ok := byCategory[name]
		if !ok {
			sales = &CategorySales{Category: name, Revenue: decimal.Zero}
			byCategory[name] = sales
		}

		sales.Orders++
		sales.Revenue = sales.Revenue.Add(total.Decimal())
		response.TotalOrders++
		response.TotalRevenue = response.TotalRevenue.Add(total.Decimal())
	}

	for _, sales := range byCategory {
		response.Categories = append(response.Categories, *sales)
	}
	sort.Slice(response.Categories, func(i, j int) bool {
		return response.Categories[i].Category < response.Categories[j].Category
	})

	return response, nil
}
