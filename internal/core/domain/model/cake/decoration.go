package cake

import (
	"fmt"
	"strings"

	"cakeshop/internal/core/domain/model/kernel"
	"cakeshop/internal/pkg/errs"
	"cakeshop/internal/pkg/guard"
)

// DecorationKind identifies an add-on type the shop offers.
// The set of kinds is closed. A kind carries no price or display name of its
// own — those live in the pricing catalog and are frozen into a Decoration
// snapshot the moment the add-on is applied to an order.
type DecorationKind int

const (
	// UnknownDecoration represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized DecorationKind values.
	UnknownDecoration DecorationKind = iota

	// Cream is the whipped cream add-on.
	Cream

	// Skittles is the candy topping add-on.
	Skittles

	// ChocolateChips is the chocolate chips add-on.
	ChocolateChips
)

// getDecorationKindNames returns a map of DecorationKind values to their
// wire names. All kinds are included for string conversion.
func getDecorationKindNames() map[DecorationKind]string {
	return map[DecorationKind]string{
		UnknownDecoration: "unknown",
		Cream:             "cream",
		Skittles:          "skittles",
		ChocolateChips:    "chocolate_chips",
	}
}

// getValidDecorationKinds returns a map of only valid DecorationKind values.
func getValidDecorationKinds() map[DecorationKind]struct{} {
	//nolint:exhaustive // UnknownDecoration is intentionally excluded as it's invalid
	return map[DecorationKind]struct{}{
		Cream:          {},
		Skittles:       {},
		ChocolateChips: {},
	}
}

// DecorationKinds returns all valid decoration kinds.
func DecorationKinds() []DecorationKind {
	return []DecorationKind{Cream, Skittles, ChocolateChips}
}

// DecorationKindFromString parses a kind from its wire name,
// case-insensitively, e.g. "cream" or "CHOCOLATE_CHIPS".
func DecorationKindFromString(s string) (DecorationKind, error) {
	for k := range getValidDecorationKinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return UnknownDecoration, errs.NewValueIsInvalidErrorWithCause("decoration kind",
		fmt.Errorf("%q is not a valid decoration kind", s))
}

// Validate checks if the DecorationKind value is valid.
func (k DecorationKind) Validate() error {
	if _, ok := getValidDecorationKinds()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("decoration kind",
			fmt.Errorf("%d is not a valid decoration kind", k))
	}
	return nil
}

// String returns the wire name of the kind, e.g. "chocolate_chips".
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (k DecorationKind) String() string {
	if name, ok := getDecorationKindNames()[k]; ok {
		return name
	}
	return "unknown"
}

// ErrDecorationIsNotConstructed is returned when attempting to use an
// improperly initialized Decoration. Decorations must be created via
// NewDecoration so the snapshot invariants always hold.
var ErrDecorationIsNotConstructed = errs.NewValueIsRequiredError(
	"decoration must be created via NewDecoration constructor")

// Decoration is an immutable snapshot of an add-on as it existed the moment
// it was applied to an order: a display name and a cost, copied from the
// pricing catalog exactly once. Later catalog changes never reach a snapshot,
// which is what keeps already-placed orders priced as sold.
//
// Example:
//
//	cost, _ := kernel.NewMoneyFromFloat(2.00)
//	d, err := cake.NewDecoration("Cream", cost)
//	if err != nil {
//	    // handle validation error
//	}
type Decoration struct { //nolint:recvcheck //using for validation
	name string
	cost kernel.Money

	guard guard.ConstructorGuard
}

// NewDecoration creates a decoration snapshot with the given display name
// and cost. The name must be non-empty and the cost properly constructed
// (which implies non-negative).
func NewDecoration(name string, cost kernel.Money) (Decoration, error) {
	d := Decoration{
		guard: guard.NewConstructorGuard(),
	}

	if err := d.setName(name); err != nil {
		return Decoration{}, err
	}
	if err := d.setCost(cost); err != nil {
		return Decoration{}, err
	}

	return d, nil
}

// Validate checks that the Decoration was created through NewDecoration.
// The zero value fails with ErrDecorationIsNotConstructed.
func (d Decoration) Validate() error {
	return d.guard.Validate(ErrDecorationIsNotConstructed)
}

// Name returns the display name frozen at snapshot time.
func (d Decoration) Name() string {
	return d.name
}

// Cost returns the cost frozen at snapshot time.
func (d Decoration) Cost() kernel.Money {
	return d.cost
}

func (d *Decoration) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	d.name = name
	return nil
}

func (d *Decoration) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}

	d.cost = cost
	return nil
}
