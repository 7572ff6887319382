package apierror

import (
	"errors"
	"strconv"
)

// CodeUnexpected is the code for failures without a usable backend response.
const CodeUnexpected = "UNEXPECTED_ERROR"

// Default end-user messages.
const (
	MessageConnectivity    = "Network error. Please check your connection and try again."
	MessageServer          = "Server error. Please try again later."
	MessageForbidden       = "You are not allowed to perform this action."
	MessageUnauthenticated = "You are not authenticated. Please sign in again."
	MessageRequestFailed   = "Request failed. Please try again."
	MessageUnexpected      = "Unexpected error. Please try again."
)

// Error is the normalized failure of an API call.
type Error struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Error returns "<code>: <message>".
func (e Error) Error() string {
	return e.Code + ": " + e.Message
}

// TransportError reports that no response was received: the network was
// unreachable, the connection was refused or reset, or the call timed out.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "transport failure"
	}
	return "transport failure: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError reports a backend response with a non-success status.
type ResponseError struct {
	Status int
	Body   []byte
}

func (e *ResponseError) Error() string {
	return "backend responded with status " + strconv.Itoa(e.Status)
}

// CodeOf returns the normalized code of err.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	return Normalize(err).Code
}

// IsStatus reports whether err normalizes to the given HTTP status.
func IsStatus(err error, status int) bool {
	if err == nil {
		return false
	}
	return Normalize(err).Status == status
}

// As reports whether err already is a normalized Error and returns it.
func As(err error) (Error, bool) {
	var apiErr Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *Error
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return Error{}, false
}
