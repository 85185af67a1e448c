package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	MissingField      ErrorCode = "missing_field"
	SameAccount       ErrorCode = "same_account"
	InvalidAmount     ErrorCode = "invalid_amount"
	AccountNotFound   ErrorCode = "account_not_found"
	InsufficientFunds ErrorCode = "insufficient_funds"
	MissingParameter  ErrorCode = "missing_parameter"
	DuplicateAccount  ErrorCode = "duplicate_account"
	InternalError     ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

func (e *AppError) WithDetailsf(format string, args ...interface{}) *AppError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// HTTPStatus maps an error code to the status reported at the HTTP boundary.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case AccountNotFound:
		return http.StatusNotFound
	case InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// Predefined errors for common cases
var (
	ErrMissingFields     = NewAppError(MissingField, "required fields are missing")
	ErrSameAccount       = NewAppError(SameAccount, "source and destination accounts must differ")
	ErrInvalidAmount     = NewAppError(InvalidAmount, "amount must be greater than zero")
	ErrAccountNotFound   = NewAppError(AccountNotFound, "account not found")
	ErrInsufficientFunds = NewAppError(InsufficientFunds, "insufficient funds")
	ErrMissingParameter  = NewAppError(MissingParameter, "required parameter is missing")
	ErrDuplicateAccount  = NewAppError(DuplicateAccount, "account already exists")
)
