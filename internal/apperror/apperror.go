// Package apperror defines the domain error taxonomy shared by the engine,
// repositories and services. The HTTP layer maps each Kind to a status code
// in apierror.FromError.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindBusinessRule    Kind = "business_rule"
	KindInvalidQuantity Kind = "invalid_quantity"
	KindInvalidStatus   Kind = "invalid_status"
	KindConflict        Kind = "conflict"
	KindUnauthorized    Kind = "unauthorized"
)

// Error is a typed domain failure carrying a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports that an id did not resolve, e.g. NotFound("product", 7).
func NotFound(entity string, id int64) *Error {
	return newf(KindNotFound, "%s not found with id %d", entity, id)
}

// NotFoundMsg is NotFound with a free-form message.
func NotFoundMsg(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

func BusinessRule(format string, args ...any) *Error {
	return newf(KindBusinessRule, format, args...)
}

func InvalidQuantity(format string, args ...any) *Error {
	return newf(KindInvalidQuantity, format, args...)
}

func InvalidStatus(entity, value string) *Error {
	return newf(KindInvalidStatus, "invalid %s status: %q", entity, value)
}

func Conflict(format string, args ...any) *Error {
	return newf(KindConflict, format, args...)
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
