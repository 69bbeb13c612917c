// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"net/http"

	"supplychainx/internal/apperror"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}

const internalMessage = "internal server error"

// FromError maps a domain error to its HTTP status and envelope. Errors
// without a domain kind become a generic 500 so internals never leak.
func FromError(err error) (int, *APIError) {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		return http.StatusNotFound, New(err.Error())
	case apperror.KindBusinessRule, apperror.KindConflict:
		return http.StatusConflict, New(err.Error())
	case apperror.KindInvalidQuantity, apperror.KindInvalidStatus:
		return http.StatusBadRequest, New(err.Error())
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized, New(err.Error())
	}
	return http.StatusInternalServerError, New(internalMessage)
}
