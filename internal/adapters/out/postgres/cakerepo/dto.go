// Package cakerepo provides data transfer objects and mapping functions for
// cake order persistence. This package implements the repository pattern for
// the cake domain aggregate, handling the conversion between domain entities
// and database representations.
package cakerepo

import (
	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting cake orders.
// The formatted order identifier is the primary key; category is indexed for
// the per-category listing and sales queries.
type OrderDTO struct {
	ID          string          `gorm:"type:varchar(16);primaryKey"`
	Category    int             `gorm:"index"`
	Size        int             ``
	BasePrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Decorations []DecorationDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cake orders.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DecorationDTO represents one persisted decoration snapshot. Position
// records the application order within the chain; name and cost are the
// values frozen when the decoration was applied.
type DecorationDTO struct {
	ID       uint            `gorm:"primaryKey;autoIncrement"`
	OrderID  string          `gorm:"type:varchar(16);index"`
	Position int             ``
	Name     string          ``
	Cost     decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for decoration snapshots.
func (DecorationDTO) TableName() string {
	return "order_decorations"
}

// fromDomain converts a cake aggregate to its database representation.
// Decoration snapshots keep their chain position so rehydration preserves
// display order.
func fromDomain(aggregate *cake.Cake) OrderDTO {
	decorations := aggregate.Decorations()
	dtos := make([]DecorationDTO, 0, len(decorations))
	for i, d := range decorations {
		dtos = append(dtos, DecorationDTO{
			OrderID:  aggregate.ID(),
			Position: i,
			Name:     d.Name(),
			Cost:     d.Cost().Decimal(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID(),
		Category:    int(aggregate.Category()),
		Size:        int(aggregate.Size()),
		BasePrice:   aggregate.BasePrice().Decimal(),
		Decorations: dtos,
	}
}

// toDomain converts a database DTO to a cake aggregate.
// Reconstructs the complete aggregate including decoration snapshots using
// RestoreCake. Decorations must be sorted by position before calling.
func toDomain(dto OrderDTO) (*cake.Cake, error) {
	basePrice, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return nil, err
	}

	decorations := make([]cake.Decoration, 0, len(dto.Decorations))
	for _, d := range dto.Decorations {
		cost, costErr := kernel.NewMoney(d.Cost)
		if costErr != nil {
			return nil, costErr
		}

		decoration, decErr := cake.NewDecoration(d.Name, cost)
		if decErr != nil {
			return nil, decErr
		}

		decorations = append(decorations, decoration)
	}

	return cake.RestoreCake(
		dto.ID,
		cake.Category(dto.Category),
		cake.Size(dto.Size),
		basePrice,
		decorations,
	)
}
