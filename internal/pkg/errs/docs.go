// Package errs provides standardized error types for the bookstore service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - QueryIsInvalidError, InsufficientStockError, UniqueConstraintViolationError,
//     ReferentialIntegrityViolationError and friends for workflow and store failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf maps any error in the chain to a Kind so adapters can pick a status
// code without inspecting messages.
package errs
