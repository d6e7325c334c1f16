package services

import (
	"fmt"
	"sync"

	"cakeshop/internal/core/domain/model/cake"
)

// IdentityGenerator issues formatted order identifiers with an independent
// sequential counter per category. For a fixed category the issued counters
// are strictly increasing with no gaps, starting at 1; counters are never
// reused or decremented, and resetting the pricing catalog does not touch
// them.
//
// Identifiers look like "CHO-L-001": three-letter category code, one-letter
// size code, and the counter zero-padded to three digits. There is no
// ordering guarantee across categories.
//
// The generator is an explicit instance rather than hidden package state so
// tests can construct independent generators per case. A mutex serializes
// NextID per generator, preserving the no-gaps invariant under concurrent
// order placement.
type IdentityGenerator struct {
	mu       sync.Mutex
	counters map[cake.Category]int
}

// NewIdentityGenerator creates a generator with every category's counter
// initialized to 1.
func NewIdentityGenerator() *IdentityGenerator {
	counters := make(map[cake.Category]int, len(cake.Categories()))
	for _, c := range cake.Categories() {
		counters[c] = 1
	}

	return &IdentityGenerator{counters: counters}
}

// NextID formats an identifier from the category's current counter and then
// advances the counter by one. Validation happens before any mutation: an
// invalid category or size leaves every counter unchanged.
//
// Example:
//
//	ids := services.NewIdentityGenerator()
//	id, _ := ids.NextID(cake.Apple, cake.Large) // "APP-L-001"
//	id, _ = ids.NextID(cake.Apple, cake.Small)  // "APP-S-002"
func (g *IdentityGenerator) NextID(category cake.Category, size cake.Size) (string, error) {
	categoryCode, err := category.Code()
	if err != nil {
		return "", err
	}
	sizeCode, err := size.Code()
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	counter := g.counters[category]
	g.counters[category] = counter + 1

	return fmt.Sprintf("%s-%s-%03d", categoryCode, sizeCode, counter), nil
}

// PeekCount returns the counter value that the NEXT NextID call for the
// category will use, without consuming it.
//
// Note: this deliberately preserves the historical convention that the
// count is one ahead of the number of orders created so far — dashboards
// report "orders created" as PeekCount(category) - 1. Callers relying on
// the raw value must keep the off-by-one in mind.
func (g *IdentityGenerator) PeekCount(category cake.Category) (int, error) {
	if err := category.Validate(); err != nil {
		return 0, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.counters[category], nil
}
