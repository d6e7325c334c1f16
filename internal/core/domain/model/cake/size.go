package cake

import (
	"fmt"
	"strings"

	"cakeshop/internal/pkg/errs"
)

// Size represents the size tier of a cake order.
// The set of sizes is closed; order identifiers embed a fixed one-letter
// code derived from the size.
type Size int

const (
	// UnknownSize represents an invalid or undefined size.
	// This value (0) helps catch uninitialized Size values.
	UnknownSize Size = iota

	// Small is the small size tier.
	Small

	// Medium is the medium size tier.
	Medium

	// Large is the large size tier.
	Large
)

// getSizeNames returns a map of Size values to their display names.
// All sizes are included for string conversion.
func getSizeNames() map[Size]string {
	return map[Size]string{
		UnknownSize: "Unknown",
		Small:       "Small",
		Medium:      "Medium",
		Large:       "Large",
	}
}

// getValidSizes returns a map of only valid Size values.
// Only valid sizes are included to support validation.
func getValidSizes() map[Size]struct{} {
	//nolint:exhaustive // UnknownSize is intentionally excluded as it's invalid
	return map[Size]struct{}{
		Small:  {},
		Medium: {},
		Large:  {},
	}
}

// Sizes returns all valid sizes from smallest to largest.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

// SizeFromString parses a size from its name, case-insensitively.
// Returns a validation error for anything but "small", "medium", "large".
func SizeFromString(s string) (Size, error) {
	for size := range getValidSizes() {
		if strings.EqualFold(s, size.String()) {
			return size, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause("size",
		fmt.Errorf("%q is not a valid size", s))
}

// Validate checks if the Size value is valid.
//
// Valid sizes are: Small, Medium, Large.
// UnknownSize (0) and any other values are invalid.
func (s Size) Validate() error {
	if _, ok := getValidSizes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the display name of the size, e.g. "Large".
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (s Size) String() string {
	if name, ok := getSizeNames()[s]; ok {
		return name
	}
	return "Unknown"
}

// DisplayName returns the customer-facing size name used in descriptions.
// Identical to String for sizes; kept separate so display wording can
// diverge from enum names without touching callers.
func (s Size) DisplayName() string {
	return s.String()
}

// Code returns the one-letter size code embedded in order identifiers,
// e.g. "L" for Large. Returns a validation error for invalid sizes.
func (s Size) Code() (string, error) {
	switch s {
	case Small:
		return "S", nil
	case Medium:
		return "M", nil
	case Large:
		return "L", nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%d has no size code", s))
	}
}
