package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// InvalidTransition rejects a state machine move that is not allowed from
// the record's current status. Surfaced as a conflict.
func InvalidTransition(message string) *AppError {
	return &AppError{
		Code:    "INVALID_TRANSITION",
		Message: message,
		Status:  http.StatusConflict,
	}
}

// InvalidTarget rejects an escalation or approval edge that does not match
// the hierarchy.
func InvalidTarget(message string) *AppError {
	return &AppError{
		Code:    "INVALID_TARGET",
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// InsufficientStock names the first inventory item whose stock cannot cover
// the requested consumption.
func InsufficientStock(itemName string) *AppError {
	return &AppError{
		Code:    "INSUFFICIENT_STOCK",
		Message: fmt.Sprintf("insufficient stock for item %q", itemName),
		Status:  http.StatusBadRequest,
	}
}

// AlreadyResolved is the idempotency guard on complaint resolution.
func AlreadyResolved(complaintID string) *AppError {
	return &AppError{
		Code:    "ALREADY_RESOLVED",
		Message: fmt.Sprintf("complaint %s is already resolved", complaintID),
		Status:  http.StatusConflict,
	}
}

// CoordinationFailure means the atomic unit could not commit. All effects
// were rolled back; the caller may retry.
func CoordinationFailure(message string, err error) *AppError {
	return &AppError{
		Code:    "COORDINATION_FAILURE",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
