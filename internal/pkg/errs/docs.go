// Package errs provides standardized error types for the gigboard application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of errors.
//
// Validation errors used by domain constructors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//
// Provider-boundary errors raised while talking to external job sources:
//   - SourceUnavailableError: A provider failed to serve a listing call
//   - JobNotFoundError: A job id is unknown to its provider
//   - AlreadyTakenError: Another driver claimed the job first
//   - ActionNotPermittedError: The safety gate rejected an action
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrJobNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets callers classify failures with errors.Is
// while still surfacing a single human-readable message at the UI boundary.
package errs
