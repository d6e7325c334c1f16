package cake

import (
	"fmt"
	"strings"

	"cakeshop/internal/pkg/errs"
)

// Category represents the base product kind of a cake order.
// The set of categories is closed: the shop sells apple, cheese, and
// chocolate cakes, and order identifiers embed a fixed three-letter code
// derived from the category.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	UnknownCategory Category = iota

	// Apple is the apple cake category.
	Apple

	// Cheese is the cheese cake category.
	Cheese

	// Chocolate is the chocolate cake category.
	Chocolate
)

// getCategoryNames returns a map of Category values to their enum names.
// All categories are included for string conversion.
func getCategoryNames() map[Category]string {
	return map[Category]string{
		UnknownCategory: "Unknown",
		Apple:           "Apple",
		Cheese:          "Cheese",
		Chocolate:       "Chocolate",
	}
}

// getValidCategories returns a map of only valid Category values.
// Only valid categories are included to support validation.
func getValidCategories() map[Category]struct{} {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[Category]struct{}{
		Apple:     {},
		Cheese:    {},
		Chocolate: {},
	}
}

// Categories returns all valid categories in display order.
// Useful for iterating the catalog or rendering dashboards.
func Categories() []Category {
	return []Category{Apple, Cheese, Chocolate}
}

// CategoryFromString parses a category from its name, case-insensitively.
// Accepts "apple", "Cheese", "CHOCOLATE", and so on.
// Returns a validation error for anything else.
func CategoryFromString(s string) (Category, error) {
	for c := range getValidCategories() {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks if the Category value is valid.
//
// Valid categories are: Apple, Cheese, Chocolate.
// UnknownCategory (0) and any other values are invalid.
func (c Category) Validate() error {
	if _, ok := getValidCategories()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the enum name of the category, e.g. "Apple".
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (c Category) String() string {
	if name, ok := getCategoryNames()[c]; ok {
		return name
	}
	return "Unknown"
}

// DisplayName returns the customer-facing product name, e.g. "Apple Cake".
// Used by Cake.Describe to render order descriptions.
func (c Category) DisplayName() string {
	switch c {
	case Apple:
		return "Apple Cake"
	case Cheese:
		return "Cheese Cake"
	case Chocolate:
		return "Chocolate Cake"
	default:
		return "Unknown"
	}
}

// Code returns the three-letter category code embedded in order identifiers,
// e.g. "APP" for Apple. Returns a validation error for invalid categories.
func (c Category) Code() (string, error) {
	switch c {
	case Apple:
		return "APP", nil
	case Cheese:
		return "CHE", nil
	case Chocolate:
		return "CHO", nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d has no category code", c))
	}
}
