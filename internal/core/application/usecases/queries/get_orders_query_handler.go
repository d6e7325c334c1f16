package queries

import (
	"context"

	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves placed orders from the database.
// Each order is rehydrated from its persisted snapshots, so descriptions and
// totals reflect what was sold, not what the catalog charges today.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the matching orders sorted by their
// identifiers.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cakes, err := loadCakes(ctx, h.db, query)
	if err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0, len(cakes))
	for _, c := range cakes {
		total, totalErr := c.TotalCost()
		if totalErr != nil {
			return nil, totalErr
		}

		orders = append(orders, GetOrdersQueryResponse{
			ID:          c.ID(),
			Category:    c.Category().String(),
			Size:        c.Size().String(),
			Description: c.Describe(),
			Total:       total.Decimal(),
		})
	}

	return orders, nil
}

// loadCakes reads orders and their decoration snapshots and rehydrates the
// aggregates. Decorations are reapplied in their persisted position so the
// rendered description matches the original.
func loadCakes(ctx context.Context, db *gorm.DB, query GetOrdersQuery) ([]*cake.Cake, error) {
	ordersSQL := `
		SELECT
			id,
			category,
			size,
			base_price
		FROM orders
		ORDER BY id
	`
	args := make([]any, 0, 1)
	if category, ok := query.Category(); ok {
		ordersSQL = `
			SELECT
				id,
				category,
				size,
				base_price
			FROM orders
			WHERE category = ?
			ORDER BY id
		`
		args = append(args, int(category))
	}

	type orderRow struct {
		id        string
		category  int
		size      int
		basePrice decimal.Decimal
	}

	rows, err := db.WithContext(ctx).Raw(ordersSQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var row orderRow
		if err = rows.Scan(&row.id, &row.category, &row.size, &row.basePrice); err != nil {
			return nil, err
		}
		orderRows = append(orderRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	decorations, err := loadDecorations(ctx, db)
	if err != nil {
		return nil, err
	}

	cakes := make([]*cake.Cake, 0, len(orderRows))
	for _, row := range orderRows {
		basePrice, moneyErr := kernel.NewMoney(row.basePrice)
		if moneyErr != nil {
			return nil, moneyErr
		}

		restored, restoreErr := cake.RestoreCake(
			row.id,
			cake.Category(row.category),
			cake.Size(row.size),
			basePrice,
			decorations[row.id],
		)
		if restoreErr != nil {
			return nil, restoreErr
		}

		cakes = append(cakes, restored)
	}

	return cakes, nil
}

// loadDecorations reads every decoration snapshot keyed by order, ordered by
// their position within the chain.
func loadDecorations(ctx context.Context, db *gorm.DB) (map[string][]cake.Decoration, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			cost
		FROM order_decorations
		ORDER BY order_id, position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decorations := make(map[string][]cake.Decoration)
	for rows.Next() {
		var orderID, name string
		var cost decimal.Decimal

		if err = rows.Scan(&orderID, &name, &cost); err != nil {
			return nil, err
		}

		costMoney, moneyErr := kernel.NewMoney(cost)
		if moneyErr != nil {
			return nil, moneyErr
		}

		decoration, decErr := cake.NewDecoration(name, costMoney)
		if decErr != nil {
			return nil, decErr
		}

		decorations[orderID] = append(decorations[orderID], decoration)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return decorations, nil
}
