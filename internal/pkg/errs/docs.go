// Package errs provides standardized error types for the pigeon post application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per recoverable failure kind:
//   - ValidationError: malformed or missing input, reported per field and batchable
//     via errors.Join
//   - ObjectNotFoundError: a referenced identity does not exist
//   - ConflictError: uniqueness violation, unavailable carrier, or deletion of an
//     entity with live references
//   - IllegalStateError: operation not permitted in the entity's current lifecycle state
//   - InvalidTransitionError: a status change not present in the transition table
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValidation) for errors.Is classification
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// All of these are caller-recoverable. Storage failures are intentionally not
// wrapped into any of these kinds and surface as opaque internal errors.
package errs
