// Package errs provides the standardized error types used across the cake
// shop service.
//
// Two failure classes cover everything the domain can report:
//
//   - invalid input (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError): the caller passed something the operation
//     cannot accept — a missing enumerant, a negative price, an empty name.
//     These are never recovered internally; they always surface to the caller.
//   - failed lookup (ObjectNotFoundError): a catalog or repository lookup
//     found no entry for the given key.
//
// Each error type follows the same pattern: a sentinel error variable, a
// struct carrying the parameter name and optional cause, constructors with
// and without cause, and an Unwrap method pointing at the sentinel so that
// errors.Is classification works across layers.
package errs
