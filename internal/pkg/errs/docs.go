// Package errs provides standardized error types shared across the canteen
// application. Each error type follows the same pattern: a sentinel error for
// errors.Is classification, a struct carrying details, constructors with and
// without a cause, and an Unwrap method returning the sentinel.
//
// Error types:
//   - ValueIsRequiredError: a required value is missing or blank
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value fell outside its allowed bounds
//   - ObjectNotFoundError: an object could not be resolved by identifier
//   - ConflictError: the caller acted on a stale view and must reload
package errs
