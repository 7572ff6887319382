package apierror_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/orgclient/pkg/apierror"
)

func TestFromTransport(t *testing.T) {
	t.Parallel()

	got := apierror.FromTransport(errors.New("dial tcp 10.0.0.1:443: connect: connection refused"))
	assert.Equal(t, apierror.Error{
		Code:    apierror.CodeUnexpected,
		Status:  0,
		Message: apierror.MessageConnectivity,
	}, got)
	assert.NotContains(t, got.Message, "10.0.0.1")
}

func TestFromResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   apierror.Error
	}{
		{
			name:   "structured payload is used verbatim",
			status: http.StatusNotFound,
			body:   `{"code":"NOT_FOUND","message":"Product missing"}`,
			want:   apierror.Error{Code: "NOT_FOUND", Status: 404, Message: "Product missing"},
		},
		{
			name:   "gateway payload with extra fields",
			status: http.StatusBadRequest,
			body:   `{"code":"ORG_REQUIRED","message":"X-ORG-ID header is required","correlationId":"c-1","path":"/api/catalog/products","timestamp":"2026-01-01T00:00:00Z"}`,
			want:   apierror.Error{Code: "ORG_REQUIRED", Status: 400, Message: "X-ORG-ID header is required"},
		},
		{
			name:   "message is trimmed",
			status: http.StatusConflict,
			body:   `{"code":"CONFLICT","message":"  Already exists \n"}`,
			want:   apierror.Error{Code: "CONFLICT", Status: 409, Message: "Already exists"},
		},
		{
			name:   "empty body on server error",
			status: http.StatusInternalServerError,
			body:   ``,
			want:   apierror.Error{Code: "HTTP_500", Status: 500, Message: apierror.MessageServer},
		},
		{
			name:   "html body on bad gateway",
			status: http.StatusBadGateway,
			body:   `<html><body>upstream exploded at db.go:42</body></html>`,
			want:   apierror.Error{Code: "HTTP_502", Status: 502, Message: apierror.MessageServer},
		},
		{
			name:   "forbidden without payload",
			status: http.StatusForbidden,
			body:   `{}`,
			want:   apierror.Error{Code: "HTTP_403", Status: 403, Message: apierror.MessageForbidden},
		},
		{
			name:   "unauthorized without payload",
			status: http.StatusUnauthorized,
			body:   `null`,
			want:   apierror.Error{Code: "HTTP_401", Status: 401, Message: apierror.MessageUnauthenticated},
		},
		{
			name:   "code without message falls back to status message",
			status: http.StatusForbidden,
			body:   `{"code":"ORG_FORBIDDEN"}`,
			want:   apierror.Error{Code: "ORG_FORBIDDEN", Status: 403, Message: apierror.MessageForbidden},
		},
		{
			name:   "message without code gets status code",
			status: http.StatusUnprocessableEntity,
			body:   `{"message":"Name is required"}`,
			want:   apierror.Error{Code: "HTTP_422", Status: 422, Message: "Name is required"},
		},
		{
			name:   "blank fields fall back to defaults",
			status: http.StatusNotFound,
			body:   `{"code":"   ","message":"  "}`,
			want:   apierror.Error{Code: "HTTP_404", Status: 404, Message: apierror.MessageRequestFailed},
		},
		{
			name:   "non-string fields are ignored",
			status: http.StatusServiceUnavailable,
			body:   `{"code":503,"message":{"detail":"pool exhausted"}}`,
			want:   apierror.Error{Code: "HTTP_503", Status: 503, Message: apierror.MessageServer},
		},
		{
			name:   "array body",
			status: http.StatusBadRequest,
			body:   `["bad"]`,
			want:   apierror.Error{Code: "HTTP_400", Status: 400, Message: apierror.MessageRequestFailed},
		},
		{
			name:   "status zero",
			status: 0,
			body:   ``,
			want:   apierror.Error{Code: "HTTP_0", Status: 0, Message: apierror.MessageConnectivity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, apierror.FromResponse(tt.status, []byte(tt.body)))
		})
	}
}

func TestDefaultMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, apierror.MessageConnectivity, apierror.DefaultMessage(0))
	assert.Equal(t, apierror.MessageServer, apierror.DefaultMessage(500))
	assert.Equal(t, apierror.MessageServer, apierror.DefaultMessage(599))
	assert.Equal(t, apierror.MessageForbidden, apierror.DefaultMessage(403))
	assert.Equal(t, apierror.MessageUnauthenticated, apierror.DefaultMessage(401))
	assert.Equal(t, apierror.MessageRequestFailed, apierror.DefaultMessage(404))
	assert.Equal(t, apierror.MessageRequestFailed, apierror.DefaultMessage(429))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("get products: %w", &apierror.TransportError{Err: context.DeadlineExceeded})
		got := apierror.Normalize(err)
		assert.Equal(t, apierror.CodeUnexpected, got.Code)
		assert.Equal(t, 0, got.Status)
		assert.Equal(t, apierror.MessageConnectivity, got.Message)
	})

	t.Run("response error", func(t *testing.T) {
		t.Parallel()
		err := &apierror.ResponseError{Status: 404, Body: []byte(`{"code":"NOT_FOUND","message":"Product missing"}`)}
		assert.Equal(t, apierror.Error{Code: "NOT_FOUND", Status: 404, Message: "Product missing"}, apierror.Normalize(err))
	})

	t.Run("already normalized", func(t *testing.T) {
		t.Parallel()
		want := apierror.Error{Code: "NOT_FOUND", Status: 404, Message: "Product missing"}
		assert.Equal(t, want, apierror.Normalize(want))
		assert.Equal(t, want, apierror.Normalize(fmt.Errorf("wrapped: %w", want)))
		assert.Equal(t, want, apierror.Normalize(&want))
	})

	t.Run("unexpected error", func(t *testing.T) {
		t.Parallel()
		got := apierror.Normalize(errors.New("pq: relation \"products\" does not exist"))
		assert.Equal(t, apierror.Error{Code: apierror.CodeUnexpected, Status: 0, Message: apierror.MessageUnexpected}, got)
	})
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	notFound := &apierror.ResponseError{Status: 404}
	assert.Equal(t, "HTTP_404", apierror.CodeOf(notFound))
	assert.True(t, apierror.IsStatus(notFound, 404))
	assert.False(t, apierror.IsStatus(notFound, 500))
	assert.False(t, apierror.IsStatus(nil, 0))
	assert.Empty(t, apierror.CodeOf(nil))

	_, ok := apierror.As(notFound)
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NOT_FOUND: Product missing",
		apierror.Render(apierror.Error{Code: "NOT_FOUND", Status: 404, Message: "Product missing"}))
	assert.Equal(t, "UNEXPECTED_ERROR: Unexpected error. Please try again.",
		apierror.Render(errors.New("boom")))
	assert.Empty(t, apierror.Render(nil))
}

func TestTransportErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := &apierror.TransportError{Err: context.Canceled}
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "transport failure")
	assert.Equal(t, "transport failure", (&apierror.TransportError{}).Error())
}
