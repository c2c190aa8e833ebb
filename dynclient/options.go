package dynclient

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/gqlgo/dyngql/client"
)

const defaultResetStoreEvery = 100

// Links resolves the transport middleware chain. It may be called more than
// once: every recycled transport client re-resolves it.
type Links func(ctx context.Context) ([]client.Link, error)

// StaticLinks wraps a fixed middleware chain.
func StaticLinks(links ...client.Link) Links {
	return func(context.Context) ([]client.Link, error) {
		return links, nil
	}
}

// HTTPOptions configures the HTTP leg of the transport.
type HTTPOptions struct {
	Endpoint string
	Header   http.Header
	Client   *http.Client
}

// Options configures a dynamic client.
type Options struct {
	// Links produces transport middleware wrapped around every request.
	// Nil means no middleware.
	Links Links
	// HTTPOptions is passed through to the HTTP transport leg.
	HTTPOptions HTTPOptions
	// ClientOptions are extra transport-client options, applied after the
	// options derived from HTTPOptions.
	ClientOptions []client.Option
	// ResetStoreEvery is the recycle threshold: the transport client is
	// replaced after this many uses. Defaults to 100.
	ResetStoreEvery int
	// Logger receives operation reports when a call supplies none.
	Logger Logger
}

// Key identifies a client configuration, for callers that cache client
// instances per configuration. Middleware chains and function values have no
// useful identity, so only the HTTP leg and the recycle threshold take part.
type Key struct {
	Endpoint        string
	Header          string
	ResetStoreEvery int
}

// Key derives the identity of this configuration.
func (o Options) Key() Key {
	return Key{
		Endpoint:        o.HTTPOptions.Endpoint,
		Header:          canonicalHeader(o.HTTPOptions.Header),
		ResetStoreEvery: o.resetStoreEvery(),
	}
}

func (o Options) resetStoreEvery() int {
	if o.ResetStoreEvery > 0 {
		return o.ResetStoreEvery
	}

	return defaultResetStoreEvery
}

func canonicalHeader(h http.Header) string {
	keys := make([]string, 0, len(h))
	for key := range h {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(strings.Join(h[key], ","))
		b.WriteString("\n")
	}

	return b.String()
}
