package client

import "context"

// Executor executes a single GraphQL request.
type Executor interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, req *Request) (*Response, error)

func (f ExecutorFunc) Execute(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// Link is transport middleware: it wraps an Executor and returns an Executor.
// A link may rewrite the request, inspect the response, or short-circuit the
// chain entirely.
type Link func(next Executor) Executor

// Chain composes links around a terminal executor. Links apply in declaration
// order, the first link outermost.
func Chain(terminal Executor, links ...Link) Executor {
	exec := terminal
	for i := len(links) - 1; i >= 0; i-- {
		exec = links[i](exec)
	}

	return exec
}
