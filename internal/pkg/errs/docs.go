// Package errs provides standardized error types for the courier console.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value or state transition is invalid
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Boundary code (HTTP handlers, jobs) classifies errors with errors.Is
// against the sentinels rather than matching on concrete types.
package errs
