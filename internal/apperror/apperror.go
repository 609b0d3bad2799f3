// Package apperror defines the classified errors shared by the validation
// middleware and the service layer. Every failure that crosses a package
// boundary is one of these kinds; anything else is rendered as a generic
// internal error at the HTTP boundary.
package apperror

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeMalformed        Code = "malformed"
	CodeInvalidSignature Code = "invalid_signature"
	CodeExpired          Code = "expired"
	CodeUnauthorized     Code = "unauthorized"
	CodeForbidden        Code = "forbidden"
	CodeNotFound         Code = "not_found"
	CodeConflict         Code = "conflict"
	CodeUpstream         Code = "upstream_error"
	CodeInternal         Code = "internal_error"
)

// Error is a classified failure carrying the HTTP status class the boundary
// layer should render.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code Code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

func Malformed(message string) *Error {
	return newError(CodeMalformed, message, http.StatusBadRequest)
}

func InvalidSignature(message string) *Error {
	return newError(CodeInvalidSignature, message, http.StatusUnauthorized)
}

func Expired(message string) *Error {
	return newError(CodeExpired, message, http.StatusUnauthorized)
}

func Unauthorized(message string) *Error {
	return newError(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Forbidden(message string) *Error {
	return newError(CodeForbidden, message, http.StatusForbidden)
}

func NotFound(message string) *Error {
	return newError(CodeNotFound, message, http.StatusNotFound)
}

func Conflict(message string) *Error {
	return newError(CodeConflict, message, http.StatusConflict)
}

func Upstream(message string) *Error {
	return newError(CodeUpstream, message, http.StatusBadGateway)
}

func Internal(message string) *Error {
	return newError(CodeInternal, message, http.StatusInternalServerError)
}

// From returns err as a classified *Error, wrapping unclassified errors as
// internal without leaking their message to clients.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("internal server error")
}

// IsCode reports whether err is a classified error of the given kind.
func IsCode(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
