package apiclient

import (
	"context"

	"github.com/dmitrymomot/orgclient/pkg/correlation"
	"github.com/dmitrymomot/orgclient/pkg/token"
	"github.com/dmitrymomot/orgclient/pkg/urlclass"
)

// Stamper derives a new request from req. It must not mutate req.
type Stamper func(ctx context.Context, req Request, class urlclass.Classification) (Request, error)

// Stage is a named pipeline step.
type Stage struct {
	Name  string
	Stamp Stamper
}

// Stage names of the built-in stampers.
const (
	StageCorrelation = "correlation"
	StageAuth        = "auth"
	StageTenant      = "tenant"
)

// OrgIDSource provides the active organization id. *activeorg.Store implements it.
type OrgIDSource interface {
	Get(ctx context.Context) (string, bool)
}

// StampCorrelation adds a correlation id produced by gen unless req already
// carries one. A nil gen uses correlation.NewID.
func StampCorrelation(gen correlation.Generator) Stamper {
	if gen == nil {
		gen = correlation.NewID
	}
	return func(_ context.Context, req Request, _ urlclass.Classification) (Request, error) {
		if hasHeader(req.Header, HeaderCorrelationID) {
			return req, nil
		}
		return req.WithHeader(HeaderCorrelationID, gen()), nil
	}
}

// StampAuth adds the bearer token of src to private API requests. Requests
// without an available token are sent unauthenticated; the backend decides
// whether to reject them. The token source is never refreshed here.
func StampAuth(src token.Source) Stamper {
	return func(_ context.Context, req Request, class urlclass.Classification) (Request, error) {
		if class != urlclass.PrivateAPI || src == nil {
			return req, nil
		}
		tok := src.Token()
		if tok == "" {
			return req, nil
		}
		return req.WithHeader(HeaderAuthorization, "Bearer "+tok), nil
	}
}

// StampTenant adds the active organization id to private API requests. A
// request that already carries X-ORG-ID, or a session without an active
// organization, passes through unchanged.
func StampTenant(orgs OrgIDSource) Stamper {
	return func(ctx context.Context, req Request, class urlclass.Classification) (Request, error) {
		if class != urlclass.PrivateAPI || orgs == nil {
			return req, nil
		}
		if hasHeader(req.Header, HeaderOrgID) {
			return req, nil
		}
		orgID, ok := orgs.Get(ctx)
		if !ok {
			return req, nil
		}
		return req.WithHeader(HeaderOrgID, orgID), nil
	}
}
