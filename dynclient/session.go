package dynclient

import (
	"context"
	"math"
	"sync"

	"github.com/gqlgo/dyngql/client"
)

// session owns the transport client and replaces it after a fixed number of
// uses, so per-instance state (keep-alive pools, caches held by custom links)
// cannot grow without bound.
type session struct {
	mu        sync.Mutex
	uses      int
	threshold int
	current   *client.Client
	build     func(ctx context.Context) (*client.Client, error)
}

func newSession(threshold int, build func(ctx context.Context) (*client.Client, error)) *session {
	return &session{
		// Sentinel: forces construction on the very first use.
		uses:      math.MaxInt,
		threshold: threshold,
		build:     build,
	}
}

// ensure returns a live transport client, constructing a fresh one whenever
// the use counter has reached the recycle threshold. The counter always
// advances after the check, so the call that triggers recreation counts as
// use #1 of the new instance.
func (s *session) ensure(ctx context.Context) (*client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uses >= s.threshold {
		next, err := s.build(ctx)
		if err != nil {
			return nil, err
		}
		if s.current != nil {
			s.current.CloseIdleConnections()
		}
		s.current = next
		s.uses = 0
	}
	s.uses++

	return s.current, nil
}
