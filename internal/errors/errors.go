package errors

import (
	"errors"
	"fmt"
)

// Domain error type for the saving system
var (
	ErrAccountNotFound             = errors.New("account not found")
	ErrCustomerNotFound            = errors.New("customer not found")
	ErrDepositoTypeNotFound        = errors.New("deposito type not found")
	ErrAccountDepositoTypeNotFound = errors.New("deposito type not found for this account")
	ErrTransactionNotFound         = errors.New("transaction not found")
	ErrInsufficientBalance         = errors.New("insufficient balance for withdrawal")
	ErrInvalidAmount               = errors.New("amount must be at least 0.01")
	ErrResourceInUse               = errors.New("resource is still referenced by other records")
)

// Kind groups errors by how the transport layer reports them.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindNotFound            Kind = "not_found"
	KindInsufficientBalance Kind = "insufficient_balance"
	KindConflict            Kind = "conflict"
	KindStorage             Kind = "storage"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// StorageError wraps a failed persistence step.
type StorageError struct {
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during '%s': %v", e.Operation, e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func NewStorageError(operation string, cause error) error {
	return &StorageError{
		Operation: operation,
		Cause:     cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrDepositoTypeNotFound) ||
		errors.Is(err, ErrAccountDepositoTypeNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

func IsInsufficientBalance(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr) ||
		errors.Is(err, ErrInvalidAmount)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrResourceInUse)
}

// KindOf classifies err. Anything unrecognised is a storage failure.
func KindOf(err error) Kind {
	switch {
	case IsValidationError(err):
		return KindValidation
	case IsNotFound(err):
		return KindNotFound
	case IsInsufficientBalance(err):
		return KindInsufficientBalance
	case IsConflict(err):
		return KindConflict
	default:
		return KindStorage
	}
}
