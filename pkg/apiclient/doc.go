// Package apiclient shapes every outbound request a front-end application
// sends to the multi-tenant backend API and normalizes every failure.
//
// # Pipeline
//
// A Pipeline is an explicit, ordered list of stages applied to an immutable
// Request value before it is handed to a Transport:
//
//  1. correlation: adds X-CORRELATION-ID unless the caller already set one
//  2. auth: adds "Authorization: Bearer <token>" to private API requests
//     when the token source has a token
//  3. tenant: adds X-ORG-ID to private API requests when an organization is
//     active
//
// The URL is classified once per request (see package urlclass) and the same
// classification is handed to every stage. Stages never mutate their input;
// each returns a derived copy with at most one header added.
//
// On the way back, exactly one of a successful *Response or an
// apierror.Error reaches the caller. Transport failures, non-2xx responses,
// stage errors and panics inside the pipeline are all normalized. The
// pipeline never retries, times out or cancels a request on its own; the
// context passed to Do is handed to the transport unchanged.
//
// # Usage
//
//	transport, err := apiclient.NewHTTPTransport(cfg)
//	if err != nil {
//		return err
//	}
//
//	p := apiclient.New(transport,
//		apiclient.WithTokenSource(tokens),
//		apiclient.WithTenantStore(activeorg.NewStore(storage)),
//		apiclient.WithLogger(log),
//		apiclient.WithMetrics(apiclient.NewMetrics(prometheus.DefaultRegisterer)),
//	)
//
//	var products catalog.Page[catalog.ProductSummary]
//	if err := p.GetJSON(ctx, "/api/catalog/products?page=0&size=20", &products); err != nil {
//		fmt.Println(apierror.Render(err)) // "HTTP_500: Server error. Please try again later."
//	}
//
// # Fresh tokens
//
// Stamping uses the cached token only. A caller that needs a token valid for
// a minimum time uses DoFresh, which awaits a single refresh first and
// returns a local error (token.ErrRefreshFailed, token.ErrNoToken) without
// sending anything when the refresh fails.
package apiclient
