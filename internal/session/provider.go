// Package session tracks the signed-in identity for the portal runtime and
// fans sign-in/sign-out events out to the screens that derive data from it.
package session

import (
	"log/slog"
	"sync"
)

// Identity is the authenticated subject of the session. The zero value means
// no session is active.
type Identity struct {
	ID    string
	Email string
}

func (i Identity) Valid() bool {
	return i.ID != ""
}

// Listener is invoked synchronously whenever the identity changes. Sign-out
// delivers the zero Identity.
type Listener func(Identity)

type Provider struct {
	mu        sync.Mutex
	current   Identity
	listeners []Listener
	logger    *slog.Logger
}

func NewProvider(logger *slog.Logger) *Provider {
	return &Provider{logger: logger}
}

// Restore performs the one-time lookup of an existing session. A failed
// lookup surfaces as no identity; dependents skip their queries.
func (p *Provider) Restore(lookup func() (Identity, error)) {
	identity, err := lookup()
	if err != nil {
		p.logger.Warn("session lookup failed, starting unauthenticated", "error", err)
		return
	}
	if identity.Valid() {
		p.SignIn(identity)
	}
}

// Current returns the active identity, or the zero Identity when none.
func (p *Provider) Current() Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Subscribe registers a listener for future identity changes.
func (p *Provider) Subscribe(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

// SignIn sets the identity and notifies every listener before returning.
func (p *Provider) SignIn(identity Identity) {
	p.notify(identity)
}

// SignOut clears the identity and notifies every listener before returning,
// so no dependent keeps stale data across the transition.
func (p *Provider) SignOut() {
	p.notify(Identity{})
}

// Reset is the explicit application-level reset action: it behaves as a
// sign-out regardless of current state.
func (p *Provider) Reset() {
	p.SignOut()
}

func (p *Provider) notify(identity Identity) {
	p.mu.Lock()
	p.current = identity
	listeners := make([]Listener, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, l := range listeners {
		l(identity)
	}
}
