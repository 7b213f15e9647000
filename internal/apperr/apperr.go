// Package apperr defines the application error taxonomy and the response
// envelope every endpoint returns.
//
// Three error kinds exist: bad request (malformed input, carries the full
// field-error list), conflict (a business-rule rejection such as an
// unsupported company code) and internal (anything unclassified; the caller
// only ever sees a generic notice while the detail is logged server-side).
package apperr

import (
	"errors"
	"net/http"
)

// internalMessage is the only text an internal fault exposes to callers.
const internalMessage = "We encountered an unexpected issue on our server. " +
	"Please try again later, and if the problem persists, contact our support team."

// Response is the envelope returned by every endpoint.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Item    any    `json:"item"`
	Errors  any    `json:"errors"`
}

// Error is an application error that knows the response it maps to.
type Error struct {
	Status  int
	Message string
	Errors  any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// BadRequest builds a 400-class error. errs carries the per-field error
// list when the failure is a validation one, nil otherwise.
func BadRequest(message string, errs any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Errors: errs}
}

// Conflict builds a 409-class error for business-rule rejections.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Success builds the 200 envelope around a transformed item.
func Success(message string, item any) Response {
	return Response{Status: http.StatusOK, Message: message, Item: item}
}

// ToResponse maps any error to its envelope. Errors outside the taxonomy
// collapse to the generic internal response; their detail must be logged by
// the caller before mapping.
func ToResponse(err error) Response {
	var appErr *Error
	if errors.As(err, &appErr) {
		return Response{
			Status:  appErr.Status,
			Message: appErr.Message,
			Errors:  appErr.Errors,
		}
	}
	return Response{
		Status:  http.StatusInternalServerError,
		Message: internalMessage,
	}
}
