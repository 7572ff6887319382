package apiclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/orgclient/pkg/apierror"
	"github.com/dmitrymomot/orgclient/pkg/urlclass"
)

// GetJSON sends a GET request and decodes the response body into out.
// Every failure, including a body that does not decode, is an apierror.Error.
func (p *Pipeline) GetJSON(ctx context.Context, rawURL string, out any) error {
	return p.SendJSON(ctx, http.MethodGet, rawURL, nil, out)
}

// SendJSON encodes in (when non-nil) as the request body, sends the request
// and decodes the response into out (when non-nil).
func (p *Pipeline) SendJSON(ctx context.Context, method, rawURL string, in, out any) error {
	var body []byte
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return apierror.FromUnexpected(err)
		}
		body = data
	}

	req := NewRequest(method, rawURL, body)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := resp.DecodeJSON(out); err != nil {
		return p.fail(ctx, urlclass.Classify(rawURL), err, apierror.FromUnexpected)
	}
	return nil
}
