package errcodes

import (
	"fmt"
	"net/http"
)

// Wire key carrying the message in the response body. The original API is
// inconsistent about which key it uses where, and clients depend on it, so
// the key travels with the error.
const (
	WireError   = "error"
	WireMessage = "message"
)

// Error is a request-terminating error with a fixed HTTP status and response
// shape. Err, when set, is the underlying storage failure and is emitted
// under the "error" key alongside the message.
type Error struct {
	HTTPCode int
	Message  string
	Code     string
	Wire     string
	Err      error
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) Unwrap() error {
	return err.Err
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	te.Wire = err.Wire
	te.Err = err.Err
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// NotFound returns a 404 whose body is {"error": msg}. Used for read misses
// and for delete misses on resources that report them under "error".
func NotFound(msg string) error {
	return &Error{
		HTTPCode: http.StatusNotFound,
		Message:  msg,
		Code:     "not_found",
		Wire:     WireError,
	}
}

// NotFoundMessage returns a 404 whose body is {"message": msg}. Profile-book
// connection deletes report misses under "message" rather than "error".
func NotFoundMessage(msg string) error {
	return &Error{
		HTTPCode: http.StatusNotFound,
		Message:  msg,
		Code:     "not_found",
		Wire:     WireMessage,
	}
}

// BadRequest returns a 400 whose body is {"message": msg}. Covers missing
// required input, empty update bodies, and update misses.
func BadRequest(msg string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  msg,
		Code:     "bad_request",
		Wire:     WireMessage,
	}
}

// Conflict returns a 400 whose body is {"message": msg}. The message embeds
// the id of the already-existing row so callers can tell which record they
// collided with.
func Conflict(msg string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  msg,
		Code:     "conflict",
		Wire:     WireMessage,
	}
}

// Storage returns a 500 whose body is {"message": msg, "error": <err text>}.
// msg identifies the failed operation; err is the raw persistence failure.
func Storage(msg string, err error) error {
	return &Error{
		HTTPCode: http.StatusInternalServerError,
		Message:  msg,
		Code:     "storage_error",
		Wire:     WireMessage,
		Err:      err,
	}
}

func UnsupportedMediaType() error {
	return &Error{
		HTTPCode: http.StatusUnsupportedMediaType,
		Message:  "Unsupported Media Type",
		Code:     "unsupported_media_type",
		Wire:     WireMessage,
	}
}

func UnknownParameter(param string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  fmt.Sprintf("Unknown parameter %q", param),
		Code:     "unknown_parameter",
		Wire:     WireMessage,
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  msg,
		Code:     "validation_type_error",
		Wire:     WireMessage,
	}
}

func MalformedPayload() error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Malformed Payload",
		Code:     "malformed_payload",
		Wire:     WireMessage,
	}
}

func EmptyRequestBody() error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Request body can't be empty.",
		Code:     "empty_request_body",
		Wire:     WireMessage,
	}
}
