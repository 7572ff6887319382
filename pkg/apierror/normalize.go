package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// Normalize maps any error to exactly one Error.
func Normalize(err error) Error {
	if apiErr, ok := As(err); ok {
		return apiErr
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return FromTransport(transportErr)
	}

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return FromResponse(respErr.Status, respErr.Body)
	}

	return FromUnexpected(err)
}

// FromTransport normalizes a failure where no response was received.
func FromTransport(error) Error {
	return Error{
		Code:    CodeUnexpected,
		Status:  0,
		Message: MessageConnectivity,
	}
}

// FromUnexpected normalizes a failure raised inside the client itself.
func FromUnexpected(error) Error {
	return Error{
		Code:    CodeUnexpected,
		Status:  0,
		Message: MessageUnexpected,
	}
}

// FromResponse normalizes a backend response carrying a non-success status.
func FromResponse(status int, body []byte) Error {
	payload := parsePayload(body)

	code := strings.TrimSpace(payload.code)
	if code == "" {
		code = "HTTP_" + strconv.Itoa(status)
	}

	message := strings.TrimSpace(payload.message)
	if message == "" {
		message = DefaultMessage(status)
	}

	return Error{
		Code:    code,
		Status:  status,
		Message: message,
	}
}

// DefaultMessage returns the end-user message for a status without a usable payload.
func DefaultMessage(status int) string {
	switch {
	case status == 0:
		return MessageConnectivity
	case status >= http.StatusInternalServerError:
		return MessageServer
	case status == http.StatusForbidden:
		return MessageForbidden
	case status == http.StatusUnauthorized:
		return MessageUnauthenticated
	default:
		return MessageRequestFailed
	}
}

type payload struct {
	code    string
	message string
}

// parsePayload extracts string "code" and "message" fields from a JSON object
// body. Non-object bodies and non-string fields are ignored.
func parsePayload(body []byte) payload {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return payload{}
	}
	return payload{
		code:    stringField(fields, "code"),
		message: stringField(fields, "message"),
	}
}

func stringField(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Render returns the "<code>: <message>" line shown to users.
func Render(err error) string {
	if err == nil {
		return ""
	}
	return Normalize(err).Error()
}
