// Package dynclient synthesizes a callable GraphQL client from a remote
// schema. Connect introspects the schema once and manufactures one operation
// per query and mutation field; each operation accepts runtime variables and
// an optional result-shape projection, builds the operation document, and
// executes it through a periodically recycled transport client.
package dynclient

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-json-experiment/json/jsontext"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gqlgo/dyngql/client"
	"github.com/gqlgo/dyngql/graphqljson"
	"github.com/gqlgo/dyngql/introspection"
)

// failCodeRequest is the report code for transport failures handed to the
// logger's Fail path.
const failCodeRequest = "graphql request failed"

var (
	// ErrNotConnected is returned when an operation is invoked before Connect.
	ErrNotConnected = errors.New("dynclient: client is not connected")
	// ErrConnected is returned when Connect runs a second time.
	ErrConnected = errors.New("dynclient: client is already connected")
	// ErrUnknownOperation is returned for names the schema does not define.
	ErrUnknownOperation = errors.New("dynclient: unknown operation")
)

// Client exposes one synthesized operation per field of a remote GraphQL
// schema. Connect must run exactly once before any call. After Connect the
// schema and the operation table never change; reconnecting requires a new
// Client.
type Client struct {
	opts    Options
	logger  Logger
	session *session
	tracer  trace.Tracer

	schema *introspection.Schema
	ops    map[string]*Operation
}

// New builds a client from options. No network traffic happens until Connect.
func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = NewDefaultLogger()
	}

	c := &Client{
		opts:   opts,
		logger: logger,
		tracer: otel.Tracer("github.com/gqlgo/dyngql/dynclient"),
	}
	c.session = newSession(opts.resetStoreEvery(), c.buildTransport)

	return c
}

// buildTransport constructs a fresh transport client from the resolved link
// chain. Called by the session whenever the recycle threshold is hit.
func (c *Client) buildTransport(ctx context.Context) (*client.Client, error) {
	var links []client.Link
	if c.opts.Links != nil {
		resolved, err := c.opts.Links(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve links: %w", err)
		}
		links = resolved
	}

	options := []client.Option{client.WithLinks(links...)}
	if c.opts.HTTPOptions.Client != nil {
		options = append(options, client.WithHTTPClient(c.opts.HTTPOptions.Client))
	}
	if c.opts.HTTPOptions.Header != nil {
		options = append(options, client.WithHTTPHeader(c.opts.HTTPOptions.Header))
	}
	options = append(options, c.opts.ClientOptions...)

	return client.NewClient(c.opts.HTTPOptions.Endpoint, options...), nil
}

// Connect introspects the remote schema and synthesizes the operation table.
func (c *Client) Connect(ctx context.Context) error {
	if c.ops != nil {
		return ErrConnected
	}

	transport, err := c.session.ensure(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	res, err := transport.Execute(ctx, &client.Request{
		Query:         introspection.Introspection,
		OperationName: "IntrospectionQuery",
	})
	if err != nil {
		return fmt.Errorf("introspection query failed: %w", err)
	}
	if err := res.Err(); err != nil {
		return fmt.Errorf("introspection query failed: %w", err)
	}

	var q introspection.Query
	if err := graphqljson.UnmarshalData(res.Data, &q); err != nil {
		return fmt.Errorf("decode introspection result: %w", err)
	}

	schema, err := introspection.NewSchema(&q)
	if err != nil {
		return fmt.Errorf("resolve introspected schema: %w", err)
	}

	c.schema = schema
	c.ops = synthesizeOperations(schema)
	c.logger.Info("graphql client connected",
		"endpoint", c.opts.HTTPOptions.Endpoint,
		"operations", len(c.ops),
	)

	return nil
}

// Schema returns the introspected schema, or nil before Connect.
func (c *Client) Schema() *introspection.Schema {
	return c.schema
}

// Operation returns a synthesized operation by name.
func (c *Client) Operation(name string) (*Operation, bool) {
	op, ok := c.ops[name]

	return op, ok
}

// Operations lists the synthesized operation names, sorted.
func (c *Client) Operations() []string {
	names := make([]string, 0, len(c.ops))
	for name := range c.ops {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// CallOption adjusts a single operation call.
type CallOption func(*callConfig)

type callConfig struct {
	logger     Logger
	projection Projection
}

// WithLogger routes this call's reports to an alternate logger.
func WithLogger(logger Logger) CallOption {
	return func(cfg *callConfig) {
		cfg.logger = logger
	}
}

// WithProjection overrides the operation's default result shape. An empty
// projection is ignored and the default applies.
func WithProjection(p Projection) CallOption {
	return func(cfg *callConfig) {
		cfg.projection = p
	}
}

// Call invokes a synthesized operation with the given variables and returns
// the operation field's value from the response.
//
// Transport failures with no status code or a 5xx status are reported
// through the logger's Fail path and the error Fail returns is the call's
// outcome. Everything else, including GraphQL errors and 4xx statuses, is
// returned to the caller unchanged.
func (c *Client) Call(ctx context.Context, name string, variables map[string]any, opts ...CallOption) (jsontext.Value, error) {
	if c.ops == nil {
		return nil, ErrNotConnected
	}

	op, ok := c.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	cfg := callConfig{logger: c.logger}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.projection) == 0 {
		cfg.projection = op.defaults
	}

	transport, err := c.session.ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("ensure session: %w", err)
	}

	document := op.Document(cfg.projection)

	ctx, span := c.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("graphql.operation.type", string(op.kind)),
		attribute.Int("graphql.document.length", len(document)),
	))
	defer span.End()

	res, err := transport.Execute(ctx, &client.Request{
		Query:     document,
		Variables: variables,
	})
	if err == nil {
		err = res.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if isTransient(err) {
			return nil, cfg.logger.Fail(failCodeRequest, err, "operation", name)
		}

		return nil, err
	}

	value, err := graphqljson.ExtractField(res.Data, op.name)
	if err != nil {
		return nil, err
	}

	return value, nil
}

// CallInto invokes an operation and decodes the field value into out, which
// must be a non-nil pointer.
func (c *Client) CallInto(ctx context.Context, name string, variables map[string]any, out any, opts ...CallOption) error {
	value, err := c.Call(ctx, name, variables, opts...)
	if err != nil {
		return err
	}

	return graphqljson.UnmarshalData(value, out)
}

// isTransient reports whether the failure is a network-layer or server-side
// outcome: a transport failure with no status code, or a 5xx status.
func isTransient(err error) bool {
	var netErr *client.NetworkError
	if !errors.As(err, &netErr) {
		return false
	}

	return netErr.StatusCode == 0 || netErr.StatusCode >= 500
}
