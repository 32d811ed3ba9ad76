package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound                = errors.New("object not found")
	ErrValueIsInvalid                = errors.New("value is invalid")
	ErrValueIsOutOfRange             = errors.New("value is out of range")
	ErrValueIsRequired               = errors.New("value is required")
	ErrQueryIsInvalid                = errors.New("query is invalid")
	ErrEmptyOrder                    = errors.New("order has no lines")
	ErrInsufficientStock             = errors.New("insufficient stock")
	ErrUniqueConstraintViolation     = errors.New("unique constraint violation")
	ErrReferentialIntegrityViolation = errors.New("referential integrity violation")
	ErrUnauthorized                  = errors.New("unauthorized")
	ErrTransactionConflict           = errors.New("transaction conflict")
)

func sanitize(value any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", value), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, cause)
}

// ObjectNotFoundError reports a missing record identified by ID.
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
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

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
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

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
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

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
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// QueryIsInvalidError is returned by read operations whose criteria cannot be evaluated.
type QueryIsInvalidError struct {
	Reason string
	Cause  error
}

func NewQueryIsInvalidError(reason string) *QueryIsInvalidError {
	return &QueryIsInvalidError{Reason: reason}
}

func NewQueryIsInvalidErrorWithCause(reason string, cause error) *QueryIsInvalidError {
	return &QueryIsInvalidError{Reason: reason, Cause: cause}
}

func (e *QueryIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrQueryIsInvalid, e.Reason), e.Cause)
}

func (e *QueryIsInvalidError) Unwrap() error {
	return ErrQueryIsInvalid
}

// InsufficientStockError names the first product that could not cover the requested quantity.
type InsufficientStockError struct {
	SerialNumber string
	ProductName  string
	Available    int
	Requested    int
}

func NewInsufficientStockError(serialNumber, productName string, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		SerialNumber: serialNumber,
		ProductName:  productName,
		Available:    available,
		Requested:    requested,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s (%s) has %d, requested %d",
		ErrInsufficientStock, e.SerialNumber, sanitize(e.ProductName), e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

type UniqueConstraintViolationError struct {
	Object     string
	Constraint string
	Cause      error
}

func NewUniqueConstraintViolationError(object, constraint string) *UniqueConstraintViolationError {
	return &UniqueConstraintViolationError{Object: object, Constraint: constraint}
}

func NewUniqueConstraintViolationErrorWithCause(
	object, constraint string,
	cause error,
) *UniqueConstraintViolationError {
	return &UniqueConstraintViolationError{Object: object, Constraint: constraint, Cause: cause}
}

func (e *UniqueConstraintViolationError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrUniqueConstraintViolation, e.Object)
	if e.Constraint != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Constraint)
	}
	return withCause(msg, e.Cause)
}

func (e *UniqueConstraintViolationError) Unwrap() error {
	return ErrUniqueConstraintViolation
}

// ReferentialIntegrityViolationError is returned when a write would leave dangling
// references, e.g. deleting a record that a protected relationship still points at.
type ReferentialIntegrityViolationError struct {
	Object    string
	ID        any
	Dependent string
	Cause     error
}

func NewReferentialIntegrityViolationError(object string, id any, dependent string) *ReferentialIntegrityViolationError {
	return &ReferentialIntegrityViolationError{Object: object, ID: id, Dependent: dependent}
}

func NewReferentialIntegrityViolationErrorWithCause(
	object string,
	id any,
	dependent string,
	cause error,
) *ReferentialIntegrityViolationError {
	return &ReferentialIntegrityViolationError{Object: object, ID: id, Dependent: dependent, Cause: cause}
}

func (e *ReferentialIntegrityViolationError) Error() string {
	var msg string
	switch {
	case e.ID != nil && e.Dependent != "":
		msg = fmt.Sprintf("%s: %s %s is referenced by %s",
			ErrReferentialIntegrityViolation, e.Object, sanitize(e.ID), e.Dependent)
	case e.Dependent != "":
		msg = fmt.Sprintf("%s: %s references missing %s", ErrReferentialIntegrityViolation, e.Object, e.Dependent)
	default:
		msg = fmt.Sprintf("%s: %s", ErrReferentialIntegrityViolation, e.Object)
	}
	return withCause(msg, e.Cause)
}

func (e *ReferentialIntegrityViolationError) Unwrap() error {
	return ErrReferentialIntegrityViolation
}

type UnauthorizedError struct {
	Reason string
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// TransactionConflictError wraps serialization failures and deadlocks. The caller
// decides whether to retry.
type TransactionConflictError struct {
	Cause error
}

func NewTransactionConflictError(cause error) *TransactionConflictError {
	return &TransactionConflictError{Cause: cause}
}

func (e *TransactionConflictError) Error() string {
	return withCause(ErrTransactionConflict.Error(), e.Cause)
}

func (e *TransactionConflictError) Unwrap() error {
	return ErrTransactionConflict
}
