package rules

import "net/http"

// Kind is a stable machine-readable error category. Clients get it as the
// "code" field next to the human-readable "error" message.
type Kind string

const (
	KindValidation      Kind = "validation_error"
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindUpstream        Kind = "upstream_failure"
	KindUnexpected      Kind = "unexpected"
)

// HTTPStatus maps a kind to its response status code. Conflict maps to 400
// to match the API's established behavior, not 409.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a kind plus a message suitable for the response body.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func Forbidden(msg string) *Error  { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }
func Upstream(msg string) *Error   { return &Error{Kind: KindUpstream, Message: msg} }
