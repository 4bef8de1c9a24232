package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification via errors.Is.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrInvalidState        = errors.New("invalid state")
	ErrAccessForbidden     = errors.New("access forbidden")
)

// sanitize strips newlines from values before they are embedded in
// error messages.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("value is required: %s", e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("value is invalid: %s", e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value is outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %s is %s, min value is %s, max value is %s",
		sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("object not found: %s", e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError indicates that a uniqueness invariant would be
// violated, e.g. a second delivery job or invoice for the same order.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return fmt.Sprintf("object already exists: %s for %s", e.ParamName, sanitize(e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// InvalidTransitionError indicates that a state machine rule was violated.
// It carries the attempted from/to pair so callers can surface it.
type InvalidTransitionError struct {
	EntityType string
	From       string
	To         string
}

func NewInvalidTransitionError(entityType, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{EntityType: entityType, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s cannot move from %s to %s", e.EntityType, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidStateError indicates that an operation is not allowed while the
// entity is in its current state.
type InvalidStateError struct {
	Operation string
	State     string
}

func NewInvalidStateError(operation, state string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s is not allowed in status %s", e.Operation, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// AccessForbiddenError indicates an ownership violation. It is surfaced
// distinctly from ObjectNotFoundError so clients can distinguish
// "doesn't exist" from "not yours".
type AccessForbiddenError struct {
	Subject string
}

func NewAccessForbiddenError(subject string) *AccessForbiddenError {
	return &AccessForbiddenError{Subject: subject}
}

func (e *AccessForbiddenError) Error() string {
	return fmt.Sprintf("access forbidden: %s", e.Subject)
}

func (e *AccessForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}
