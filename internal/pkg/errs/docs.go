// Package errs provides the error types shared by the domain, the use cases and
// the adapters of the food delivery backend.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) used with errors.Is
//   - a struct type carrying the offending parameter and an optional Cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel, so the HTTP layer can map errors to status codes
//
// Available types:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside of its allowed range
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - AccessDeniedError: the acting user may not perform the operation
package errs
