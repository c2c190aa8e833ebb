package client

import (
	"fmt"
	"io"
	"net/http"

	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Response is the GraphQL-over-HTTP response body.
type Response struct {
	Data   jsontext.Value `json:"data,omitempty"`
	Errors gqlerror.List  `json:"errors,omitempty"`
}

// Err returns the GraphQL errors carried by the response, if any.
func (r *Response) Err() error {
	if len(r.Errors) > 0 {
		return r.Errors
	}

	return nil
}

// NetworkError is a transport-level failure: the request produced no usable
// GraphQL response. StatusCode is zero when no HTTP response arrived at all.
type NetworkError struct {
	Cause      error
	StatusCode int
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network error: status %d: %v", e.StatusCode, e.Cause)
	}

	return fmt.Sprintf("network error: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// ParseResponse decodes an HTTP response into a GraphQL response. Non-2xx
// statuses become a NetworkError carrying the status code; a body that fails
// to decode is a plain error since the server did answer.
func ParseResponse(resp *http.Response) (*Response, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{
			Cause:      fmt.Errorf("read response body: %w", err),
			StatusCode: resp.StatusCode,
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &NetworkError{
			Cause:      fmt.Errorf("unexpected status %s: %s", resp.Status, body),
			StatusCode: resp.StatusCode,
		}
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	return &out, nil
}
