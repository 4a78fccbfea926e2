package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every typed error in this
// package unwraps to exactly one of these.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrInvalidTransition   = errors.New("status transition is not allowed")
	ErrUnauthorizedRole    = errors.New("role is not permitted to perform this action")
	ErrConflict            = errors.New("concurrent modification detected")
	ErrAlreadyFinalized    = errors.New("order is already finalized")
	ErrUpstreamUnavailable = errors.New("upstream service is unavailable")
)

// sanitize removes line breaks from values before they are embedded in error
// messages, keeping log lines single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that an object could not be found by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError indicates a status change that the order state graph
// does not permit, regardless of who requested it.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthorizedRoleError indicates a status change that the state graph permits
// but the caller's role does not.
type UnauthorizedRoleError struct {
	Role   string
	Action string
}

// NewUnauthorizedRoleError creates an UnauthorizedRoleError for the given role and action.
func NewUnauthorizedRoleError(role, action string) *UnauthorizedRoleError {
	return &UnauthorizedRoleError{Role: role, Action: action}
}

func (e *UnauthorizedRoleError) Error() string {
	return fmt.Sprintf("%s: role is: %s, action is: %s", ErrUnauthorizedRole, e.Role, e.Action)
}

func (e *UnauthorizedRoleError) Unwrap() error {
	return ErrUnauthorizedRole
}

// ConflictError indicates that a conditional write observed stale state and
// modified zero rows. The caller may safely re-read and retry.
type ConflictError struct {
	ParamName string
	ID        any
}

// NewConflictError creates a ConflictError for the given object.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: param is: %s, ID is: %s", ErrConflict, e.ParamName, sanitize(e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// AlreadyFinalizedError indicates an attempt to mutate an order that has
// reached a terminal fulfillment status.
type AlreadyFinalizedError struct {
	Status string
}

// NewAlreadyFinalizedError creates an AlreadyFinalizedError for the given terminal status.
func NewAlreadyFinalizedError(status string) *AlreadyFinalizedError {
	return &AlreadyFinalizedError{Status: status}
}

func (e *AlreadyFinalizedError) Error() string {
	return fmt.Sprintf("%s: status is: %s", ErrAlreadyFinalized, e.Status)
}

func (e *AlreadyFinalizedError) Unwrap() error {
	return ErrAlreadyFinalized
}

// UpstreamUnavailableError indicates that an external collaborator (catalog,
// payment gateway) failed or timed out.
type UpstreamUnavailableError struct {
	Upstream string
	Cause    error
}

// NewUpstreamUnavailableError creates an UpstreamUnavailableError wrapping the failure cause.
func NewUpstreamUnavailableError(upstream string, cause error) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{Upstream: upstream, Cause: cause}
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: upstream is: %s (cause: %s)", ErrUpstreamUnavailable, e.Upstream, e.Cause)
	}
	return fmt.Sprintf("%s: upstream is: %s", ErrUpstreamUnavailable, e.Upstream)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return ErrUpstreamUnavailable
}
