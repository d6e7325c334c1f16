// Package http exposes the cake shop's use cases over a REST API.
// It coordinates between HTTP handlers and application use cases, mapping
// domain validation failures to status codes.
package http

import (
	"errors"
	"net/http"

	"cakeshop/internal/core/application/usecases/commands"
	"cakeshop/internal/core/application/usecases/queries"
	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server implements the HTTP handlers for order placement, order listing,
// sales reporting, and price management.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	setBasePriceHandler commands.SetBasePriceCommandHandler
	resetPricesHandler  commands.ResetPricesCommandHandler

	// Query handlers
	getOrdersHandler       queries.GetOrdersQueryHandler
	getSalesSummaryHandler queries.GetSalesSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	setBasePriceHandler commands.SetBasePriceCommandHandler,
	resetPricesHandler commands.ResetPricesCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getSalesSummaryHandler queries.GetSalesSummaryQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:      placeOrderHandler,
		setBasePriceHandler:    setBasePriceHandler,
		resetPricesHandler:     resetPricesHandler,
		getOrdersHandler:       getOrdersHandler,
		getSalesSummaryHandler: getSalesSummaryHandler,
	}
}

// RegisterRoutes attaches the server's handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/summary", s.GetSalesSummary)
	api.PUT("/prices", s.SetBasePrice)
	api.POST("/prices/reset", s.ResetPrices)
}

// Error is the JSON error body returned by all handlers.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for POST /api/v1/orders.
type NewOrder struct {
	Category    string   `json:"category"`
	Size        string   `json:"size"`
	Decorations []string `json:"decorations"`
}

// Order is the response body for a placed or listed order.
type Order struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Size        string          `json:"size"`
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
}

// SalesSummary is the response body for GET /api/v1/orders/summary.
type SalesSummary struct {
	Categories   []CategorySales `json:"categories"`
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// CategorySales holds one category's order count and revenue.
type CategorySales struct {
	Category string          `json:"category"`
	Orders   int             `json:"orders"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// NewPrice is the request body for PUT /api/v1/prices.
type NewPrice struct {
	Category string          `json:"category"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
}

// PlaceOrder handles POST /api/v1/orders - places a new cake order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	category, err := cake.CategoryFromString(newOrder.Category)
	if err != nil {
		return badRequest(ctx, err)
	}

	size, err := cake.SizeFromString(newOrder.Size)
	if err != nil {
		return badRequest(ctx, err)
	}

	kinds := make([]cake.DecorationKind, 0, len(newOrder.Decorations))
	for _, name := range newOrder.Decorations {
		kind, kindErr := cake.DecorationKindFromString(name)
		if kindErr != nil {
			return badRequest(ctx, kindErr)
		}
		kinds = append(kinds, kind)
	}

	cmd, err := commands.NewPlaceOrderCommand(category, size, kinds)
	if err != nil {
		return badRequest(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to place order")
	}

	total, err := placed.TotalCost()
	if err != nil {
		return domainError(ctx, err, "Failed to price order")
	}

	return ctx.JSON(http.StatusCreated, Order{
		ID:          placed.ID(),
		Category:    placed.Category().String(),
		Size:        placed.Size().String(),
		Description: placed.Describe(),
		Total:       total.Decimal(),
	})
}

// GetOrders handles GET /api/v1/orders - lists placed orders, optionally
// filtered with the "category" query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()
	if raw := ctx.QueryParam("category"); raw != "" {
		category, err := cake.CategoryFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}

		query, err = queries.NewGetOrdersByCategoryQuery(category)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:          o.ID,
			Category:    o.Category,
			Size:        o.Size,
			Description: o.Description,
			Total:       o.Total,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSalesSummary handles GET /api/v1/orders/summary - returns per-category
// sales figures.
func (s *Server) GetSalesSummary(ctx echo.Context) error {
	query := queries.NewGetSalesSummaryQuery()

	summary, err := s.getSalesSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve sales summary")
	}

	response := SalesSummary{
		Categories:   make([]CategorySales, len(summary.Categories)),
		TotalOrders:  summary.TotalOrders,
		TotalRevenue: summary.TotalRevenue,
	}
	for i, c := range summary.Categories {
		response.Categories[i] = CategorySales{
			Category: c.Category,
			Orders:   c.Orders,
			Revenue:  c.Revenue,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetBasePrice handles PUT /api/v1/prices - updates one base price.
func (s *Server) SetBasePrice(ctx echo.Context) error {
	var newPrice NewPrice
	if err := ctx.Bind(&newPrice); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	category, err := cake.CategoryFromString(newPrice.Category)
	if err != nil {
		return badRequest(ctx, err)
	}

	size, err := cake.SizeFromString(newPrice.Size)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSetBasePriceCommand(category, size, newPrice.Price)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.setBasePriceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update price")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResetPrices handles POST /api/v1/prices/reset - restores default base
// prices.
func (s *Server) ResetPrices(ctx echo.Context) error {
	cmd := commands.NewResetPricesCommand()

	if err := s.resetPricesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to reset prices")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// domainError maps domain validation failures to status codes: missing or
// invalid values become 400, failed lookups become 404, everything else 500.
func domainError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
