// Package fetch guards the per-screen read paths: at most one in-flight
// fetch per input key, with results of superseded calls discarded instead of
// applied. There is no retry, backoff or batching here.
package fetch

import (
	"context"
	"sync"
)

// Group tracks in-flight fetches by input key. Issuing a new fetch for a key
// cancels and supersedes the previous one; the older call's result is
// reported as not applied so callers never render stale data.
type Group struct {
	mu      sync.Mutex
	seq     map[string]uint64
	cancels map[string]context.CancelFunc
}

func NewGroup() *Group {
	return &Group{
		seq:     make(map[string]uint64),
		cancels: make(map[string]context.CancelFunc),
	}
}

// Do runs fn for the given input key. The returned bool reports whether the
// result is current and may be applied; a superseded call returns false with
// a nil result regardless of what fn produced.
func (g *Group) Do(ctx context.Context, key string, fn func(ctx context.Context) (interface{}, error)) (interface{}, bool, error) {
	g.mu.Lock()
	if cancel, ok := g.cancels[key]; ok {
		cancel()
	}
	g.seq[key]++
	mySeq := g.seq[key]
	ctx, cancel := context.WithCancel(ctx)
	g.cancels[key] = cancel
	g.mu.Unlock()

	result, err := fn(ctx)

	g.mu.Lock()
	current := g.seq[key] == mySeq
	if current {
		delete(g.cancels, key)
		cancel()
	}
	g.mu.Unlock()

	if !current {
		return nil, false, nil
	}
	return result, true, err
}

// Reset cancels everything in flight and invalidates pending results. Used on
// sign-out so nothing fetched for the old identity is ever applied.
func (g *Group) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for key, cancel := range g.cancels {
		cancel()
		delete(g.cancels, key)
	}
	for key := range g.seq {
		g.seq[key]++
	}
}
