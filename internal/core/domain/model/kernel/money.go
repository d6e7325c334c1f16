package kernel

import (
	"fmt"

	"cakeshop/internal/pkg/errs"
	"cakeshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney or NewMoneyFromFloat
// so the non-negativity invariant always holds.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewMoneyFromFloat constructors")

// Money is an immutable value object representing a non-negative amount in
// the shop's single currency. It wraps an arbitrary-precision decimal so that
// price arithmetic carries no binary floating point error.
//
// The zero value of Money is invalid and will fail validation — use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoneyFromFloat(12.50)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price) // Output: 12.50
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns a validation error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
// Returns a validation error if the amount is negative.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Validate checks that the Money was created through a constructor.
// The zero value fails with ErrMoneyIsNotConstructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64. The result may lose precision and
// is intended for display-layer serialization only.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// Add returns the sum of two Money values.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Add(other.amount))
}

// IsEqual compares two Money values for numeric equality, so 2.5 and 2.50
// are equal. Both operands must be properly constructed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return m.amount.Equal(other.amount), nil
}

// String renders the amount with two decimal places, e.g. "12.50".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// setAmount validates and sets the amount.
// Note: a pointer receiver on a private setter, in contrast with the value
// receivers elsewhere, keeps validation self-encapsulated during construction.
func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	m.amount = amount
	return nil
}
