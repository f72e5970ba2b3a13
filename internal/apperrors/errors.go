package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTenantUnavailable indicates that a tenant-scoped operation was invoked without a resolved tenant.
var ErrTenantUnavailable = errors.New("tenant not available")

// ErrRateUnavailable indicates that no fresh cached rate exists and the rate provider
// could not supply a usable one.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// AppError carries an HTTP-ish status code and a message alongside the underlying cause.
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

// Unwrap exposes the cause so errors.Is / errors.As keep working through AppError.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewConflictError creates an AppError that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewRateUnavailableError wraps a provider failure so it matches ErrRateUnavailable
// while keeping the original cause in the message.
func NewRateUnavailableError(message string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrRateUnavailable, message)
	}
	return fmt.Errorf("%w: %s: %w", ErrRateUnavailable, message, cause)
}

// HTTPStatus maps an error onto the status code handlers should respond with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTenantUnavailable):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrRateUnavailable):
		return http.StatusBadGateway
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
