package client

import (
	"context"
	"fmt"
	"net/http"
)

// Client posts GraphQL operations to a single endpoint, routing every request
// through the configured link chain before it reaches the HTTP leg.
type Client struct {
	client   *http.Client
	header   http.Header
	endpoint string
	links    []Link
	exec     Executor
}

// NewClient creates a new transport client wrapper.
func NewClient(endpoint string, options ...Option) *Client {
	client := &Client{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
	for _, option := range options {
		option(client)
	}
	client.exec = Chain(ExecutorFunc(client.post), client.links...)

	return client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.client = httpClient
	}
}

func WithHTTPHeader(header http.Header) Option {
	return func(c *Client) {
		c.header = header
	}
}

func WithLinks(links ...Link) Option {
	return func(c *Client) {
		c.links = links
	}
}

// Execute runs one request through the link chain and returns the decoded
// GraphQL response.
func (c *Client) Execute(ctx context.Context, req *Request) (*Response, error) {
	return c.exec.Execute(ctx, req)
}

// CloseIdleConnections drops idle keep-alive connections held by the
// underlying HTTP client. Called when a client instance is recycled.
func (c *Client) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

func (c *Client) post(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := NewRequest(ctx, c.endpoint, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create post request: %w", err)
	}

	for key, values := range c.header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	return ParseResponse(resp)
}
