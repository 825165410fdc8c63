// Package apierr defines the client-facing error shape and the ordered
// translation from internal failures to HTTP responses. Every error
// ultimately rendered to a client is {status, msg}; nothing else leaks.
package apierr

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Fixed client-facing messages
const (
	MsgBadRequest     = "Bad Request"
	MsgColumnMissing  = "Column Does Not Exist"
	MsgInvalidSortBy  = "Bad Request: Invalid Sort By"
	MsgInternalServer = "Internal Server Error"
)

// Error is a structured rejection carrying the HTTP status and message to
// send to the client. It is recognized by Translate and forwarded as-is.
type Error struct {
	Status int    `json:"-"`
	Msg    string `json:"msg"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Msg
}

// New creates an Error with an arbitrary status
func New(status int, msg string) *Error {
	return &Error{Status: status, Msg: msg}
}

// BadRequest creates a 400 rejection
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}

// NotFound creates a 404 rejection
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}

// Translate converts any error into the status and message to respond
// with. The chain is ordered: structured rejections pass through, then
// recognized Postgres error codes are mapped, then everything else
// becomes a generic 500.
func Translate(err error) (int, string) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Msg
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "22P02", // invalid_text_representation
			"23502", // not_null_violation
			"23503", // foreign_key_violation
			"42601": // syntax_error
			return http.StatusBadRequest, MsgBadRequest
		case "42703", // undefined_column
			"42702": // ambiguous_column
			return http.StatusNotFound, MsgColumnMissing
		case "42P10": // invalid_column_reference
			return http.StatusBadRequest, MsgInvalidSortBy
		}
	}

	return http.StatusInternalServerError, MsgInternalServer
}
