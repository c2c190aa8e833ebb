package dynclient

import (
	"context"

	"github.com/go-json-experiment/json/jsontext"
)

// BoundClient wraps a Client with a pre-bound logger, so call sites need not
// pass one per call. It is an explicit decorator over every public operation
// entry point; nothing about the underlying client changes.
type BoundClient struct {
	c      *Client
	logger Logger
}

// Bound returns a view of the client whose every call reports through logger.
func (c *Client) Bound(logger Logger) *BoundClient {
	return &BoundClient{c: c, logger: logger}
}

// Connect introspects the schema and synthesizes operations, as
// Client.Connect.
func (b *BoundClient) Connect(ctx context.Context) error {
	return b.c.Connect(ctx)
}

// Operation returns a synthesized operation by name.
func (b *BoundClient) Operation(name string) (*Operation, bool) {
	return b.c.Operation(name)
}

// Operations lists the synthesized operation names, sorted.
func (b *BoundClient) Operations() []string {
	return b.c.Operations()
}

// Call invokes an operation with the bound logger. A WithLogger call option
// still wins when supplied explicitly.
func (b *BoundClient) Call(ctx context.Context, name string, variables map[string]any, opts ...CallOption) (jsontext.Value, error) {
	return b.c.Call(ctx, name, variables, b.withBoundLogger(opts)...)
}

// CallInto invokes an operation with the bound logger and decodes the field
// value into out.
func (b *BoundClient) CallInto(ctx context.Context, name string, variables map[string]any, out any, opts ...CallOption) error {
	return b.c.CallInto(ctx, name, variables, out, b.withBoundLogger(opts)...)
}

func (b *BoundClient) withBoundLogger(opts []CallOption) []CallOption {
	return append([]CallOption{WithLogger(b.logger)}, opts...)
}
