package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated user may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientInventory indicates that a sale requested more units than are on hand.
var ErrInsufficientInventory = errors.New("insufficient inventory quantity")

// ErrAlreadyDisposed indicates a disposal attempt on an asset that was already disposed.
var ErrAlreadyDisposed = errors.New("asset already disposed")

// ErrWrongTaxRegime indicates that CIT was requested for a sole proprietor or PIT for a company.
var ErrWrongTaxRegime = errors.New("wrong tax regime for business type")

// ErrDivisionGuard indicates a computation that would divide by zero or invert to a
// negative gross, e.g. net-mode WHT with a rate of 100% or more.
var ErrDivisionGuard = errors.New("rate makes computation undefined")

// AppError carries an HTTP-ish status code alongside a message and a wrapped cause.
// Repositories use it to surface infrastructure failures with enough context for the
// handler layer to map to a response.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
