package apiclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/orgclient/pkg/activeorg"
	"github.com/dmitrymomot/orgclient/pkg/apierror"
	"github.com/dmitrymomot/orgclient/pkg/correlation"
	"github.com/dmitrymomot/orgclient/pkg/logger"
	"github.com/dmitrymomot/orgclient/pkg/token"
	"github.com/dmitrymomot/orgclient/pkg/urlclass"
)

// Pipeline applies the request stages in order and normalizes every failure.
// It is safe for concurrent use.
type Pipeline struct {
	transport Transport
	stages    []Stage
	tokens    token.Source
	logger    *slog.Logger
	metrics   *Metrics
}

type config struct {
	tokens  token.Source
	orgs    OrgIDSource
	idGen   correlation.Generator
	extra   []Stage
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Pipeline.
type Option func(*config)

// WithTokenSource sets the source of bearer tokens.
func WithTokenSource(src token.Source) Option {
	return func(c *config) {
		c.tokens = src
	}
}

// WithTenantStore sets the source of the active organization id.
func WithTenantStore(orgs OrgIDSource) Option {
	return func(c *config) {
		c.orgs = orgs
	}
}

// WithCorrelationGenerator replaces the correlation id generator.
func WithCorrelationGenerator(gen correlation.Generator) Option {
	return func(c *config) {
		if gen != nil {
			c.idGen = gen
		}
	}
}

// WithStages appends stages after the built-in ones.
func WithStages(stages ...Stage) Option {
	return func(c *config) {
		for _, s := range stages {
			if s.Stamp != nil {
				c.extra = append(c.extra, s)
			}
		}
	}
}

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics enables Prometheus counters.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// New creates a pipeline sending requests through transport.
func New(transport Transport, opts ...Option) *Pipeline {
	cfg := &config{
		idGen:  correlation.NewID,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	stages := []Stage{
		{Name: StageCorrelation, Stamp: StampCorrelation(cfg.idGen)},
		{Name: StageAuth, Stamp: StampAuth(cfg.tokens)},
		{Name: StageTenant, Stamp: StampTenant(cfg.orgs)},
	}
	stages = append(stages, cfg.extra...)

	return &Pipeline{
		transport: transport,
		stages:    stages,
		tokens:    cfg.tokens,
		logger:    cfg.logger.With(logger.Component("apiclient")),
		metrics:   cfg.metrics,
	}
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Do stamps req and sends it. It returns either a 2xx response or an
// apierror.Error, never both and never neither. req is not modified.
func (p *Pipeline) Do(ctx context.Context, req Request) (resp *Response, err error) {
	class := urlclass.Classify(req.URL)
	p.metrics.observeRequest(class.String())

	out := req.Clone()
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = p.fail(p.annotate(ctx, out), class, fmt.Errorf("%w: %v", ErrStagePanic, r), apierror.FromUnexpected)
		}
	}()

	for _, stage := range p.stages {
		next, stampErr := stage.Stamp(ctx, out, class)
		if stampErr != nil {
			return nil, p.fail(p.annotate(ctx, out), class, fmt.Errorf("stage %s: %w", stage.Name, stampErr), apierror.FromUnexpected)
		}
		out = next
	}

	ctx = p.annotate(ctx, out)

	_, authAdded := headerValue(out.Header, HeaderAuthorization)
	_, orgAdded := headerValue(out.Header, HeaderOrgID)
	p.logger.DebugContext(ctx, "sending api request",
		logger.Method(out.Method),
		logger.URL(out.URL),
		logger.Classification(class),
		slog.Bool("auth_header", authAdded),
		slog.Bool("org_header", orgAdded),
	)

	start := time.Now()
	resp, err = p.transport.Send(ctx, out)
	if err != nil {
		return nil, p.fail(ctx, class, err, normalizeTransport)
	}
	if resp == nil {
		return nil, p.fail(ctx, class, ErrNilResponse, apierror.FromUnexpected)
	}
	if !resp.OK() {
		if echoed, ok := headerValue(resp.Header, HeaderCorrelationID); ok {
			ctx = correlation.WithContext(ctx, echoed)
		}
		return nil, p.fail(ctx, class, &apierror.ResponseError{Status: resp.Status, Body: resp.Body}, apierror.Normalize)
	}

	p.logger.DebugContext(ctx, "api request succeeded",
		logger.Status(resp.Status),
		logger.Duration(time.Since(start)),
	)
	return resp, nil
}

// DoFresh makes sure the token source holds a token valid for at least
// minValidity before sending req. When the refresh fails the request is not
// sent and the refresh error is returned as is.
func (p *Pipeline) DoFresh(ctx context.Context, req Request, minValidity time.Duration) (*Response, error) {
	if _, err := token.EnsureFresh(ctx, p.tokens, minValidity); err != nil {
		p.logger.WarnContext(ctx, "token refresh before api request failed",
			logger.URL(req.URL),
			logger.Error(err),
		)
		return nil, err
	}
	return p.Do(ctx, req)
}

func (p *Pipeline) annotate(ctx context.Context, req Request) context.Context {
	if id, ok := headerValue(req.Header, HeaderCorrelationID); ok {
		ctx = correlation.WithContext(ctx, id)
	}
	if orgID, ok := headerValue(req.Header, HeaderOrgID); ok {
		ctx = activeorg.WithOrgID(ctx, orgID)
	}
	return ctx
}

func (p *Pipeline) fail(ctx context.Context, class urlclass.Classification, cause error, normalize func(error) apierror.Error) error {
	apiErr := normalize(cause)
	p.metrics.observeFailure(class.String(), apiErr.Status)
	p.logger.WarnContext(ctx, "api request failed",
		logger.Code(apiErr.Code),
		logger.Status(apiErr.Status),
		logger.Classification(class),
		logger.Error(cause),
	)
	return apiErr
}

// normalizeTransport treats any error reported by a transport as "no
// response received", unless the transport already produced a response or
// normalized error.
func normalizeTransport(err error) apierror.Error {
	if apiErr, ok := apierror.As(err); ok {
		return apiErr
	}
	var respErr *apierror.ResponseError
	if errors.As(err, &respErr) {
		return apierror.FromResponse(respErr.Status, respErr.Body)
	}
	return apierror.FromTransport(err)
}
