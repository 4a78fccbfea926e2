// Package errs provides standardized error types for the marketplace order engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic error types for common scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//
// and order-lifecycle error kinds that callers are expected to distinguish:
//   - InvalidTransitionError: the state graph has no such edge (wrong order state)
//   - UnauthorizedRoleError: the edge exists but the caller's role may not use it
//   - ConflictError: a conditional write lost a concurrent race and may be retried
//   - AlreadyFinalizedError: the order reached a terminal status
//   - UpstreamUnavailableError: an external collaborator timed out or failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
//
// Keeping the kinds distinguishable matters to clients: a rejected transition
// tells whether the actor was wrong, the order state was wrong, the order was
// already finished, or the request simply raced another writer.
package errs
