package apperr

import "errors"

// Kind classifies an application error for transport-level status mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
)

// Error is the single error type crossing layer boundaries. Domain code
// raises it, the transport layer maps its Kind to an HTTP status.
type Error struct {
	kind    Kind
	message string
	cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

func BadRequest(message string) *Error   { return New(KindBadRequest, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }

func (e *Error) Error() string { return e.message }
func (e *Error) Kind() Kind    { return e.kind }
func (e *Error) Unwrap() error { return e.cause }

// KindOf extracts the Kind from any error; unclassified errors are internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.kind
	}
	return KindInternal
}

func IsBadRequest(err error) bool   { return KindOf(err) == KindBadRequest }
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }
func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
