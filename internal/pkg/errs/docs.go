// Package errs provides standardized value errors for the trading application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is shared by value objects, aggregates and commands.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing or blank
//   - ValueIsInvalidError: a value is present but violates a rule
//   - ValueIsOutOfRangeError: a value falls outside of an inclusive range
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// Trading specific failures (orders, prices, quantities, ownership) live in
// the domainerr package; this package only covers generic value validation.
package errs
