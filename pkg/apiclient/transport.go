package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dmitrymomot/orgclient/pkg/apierror"
)

// Transport sends a stamped request. It returns a response for every status
// the backend answered with, and an error only when no response was received.
type Transport interface {
	Send(ctx context.Context, req Request) (*Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req Request) (*Response, error)

func (f TransportFunc) Send(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

// Response is a fully read backend response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}

// DecodeJSON unmarshals the body into v. An empty body leaves v untouched.
func (r *Response) DecodeJSON(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// HTTPTransport sends requests with an *http.Client instrumented with OpenTelemetry.
type HTTPTransport struct {
	client       *http.Client
	baseURL      *url.URL
	maxBodyBytes int64
}

// TransportOption configures an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithHTTPClient replaces the underlying client. The client is used as is,
// without additional instrumentation.
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *HTTPTransport) {
		if client != nil {
			t.client = client
		}
	}
}

// NewHTTPTransport creates a transport resolving relative request URLs
// against cfg.BaseURL.
func NewHTTPTransport(cfg Config, opts ...TransportOption) (*HTTPTransport, error) {
	t := &HTTPTransport{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil || base.Scheme == "" || base.Host == "" {
			return nil, errors.Join(ErrInvalidBaseURL, err)
		}
		t.baseURL = base
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Send performs the request. Failures before a response arrives, and 2xx
// bodies larger than the configured limit, are reported as
// *apierror.TransportError.
func (t *HTTPTransport) Send(ctx context.Context, req Request) (*Response, error) {
	target, err := t.resolve(req.URL)
	if err != nil {
		return nil, &apierror.TransportError{Err: err}
	}

	var body io.Reader = http.NoBody
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &apierror.TransportError{Err: err}
	}
	for k, v := range req.Header {
		httpReq.Header[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, &apierror.TransportError{Err: err}
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if t.maxBodyBytes > 0 {
		reader = io.LimitReader(resp.Body, t.maxBodyBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &apierror.TransportError{Err: err}
	}
	if t.maxBodyBytes > 0 && int64(len(data)) > t.maxBodyBytes {
		// A truncated success body would reach the caller as valid data.
		// Error bodies only feed the normalizer, which tolerates truncation.
		if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
			return nil, &apierror.TransportError{Err: ErrBodyTooLarge}
		}
		data = data[:t.maxBodyBytes]
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   data,
	}, nil
}

func (t *HTTPTransport) resolve(rawURL string) (string, error) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if t.baseURL == nil || ref.IsAbs() {
		return ref.String(), nil
	}
	return t.baseURL.ResolveReference(ref).String(), nil
}
