package session_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/Mahidhar1516/GNI/internal/session"

	"github.com/stretchr/testify/assert"
)

func newProvider() *session.Provider {
	return session.NewProvider(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestProvider_SignInNotifiesSynchronously(t *testing.T) {
	p := newProvider()

	var seen []session.Identity
	p.Subscribe(func(id session.Identity) {
		seen = append(seen, id)
	})

	p.SignIn(session.Identity{ID: "u1", Email: "jane@gni.edu"})

	// Listener must have run before SignIn returned.
	assert.Len(t, seen, 1)
	assert.Equal(t, "u1", seen[0].ID)
	assert.Equal(t, "u1", p.Current().ID)
}

func TestProvider_SignOutClearsIdentity(t *testing.T) {
	p := newProvider()
	p.SignIn(session.Identity{ID: "u1", Email: "jane@gni.edu"})

	var last session.Identity
	p.Subscribe(func(id session.Identity) { last = id })

	p.SignOut()

	assert.False(t, last.Valid())
	assert.False(t, p.Current().Valid())
}

func TestProvider_RestoreFailureMeansNoIdentity(t *testing.T) {
	p := newProvider()
	p.Restore(func() (session.Identity, error) {
		return session.Identity{}, errors.New("auth service unreachable")
	})

	assert.False(t, p.Current().Valid())
}

func TestProvider_RestoreExistingSession(t *testing.T) {
	p := newProvider()
	p.Restore(func() (session.Identity, error) {
		return session.Identity{ID: "u2", Email: "doe@gni.edu"}, nil
	})

	assert.Equal(t, "u2", p.Current().ID)
}

func TestProvider_RestoreNothingToRestore(t *testing.T) {
	p := newProvider()

	notified := false
	p.Subscribe(func(session.Identity) { notified = true })

	p.Restore(func() (session.Identity, error) {
		return session.Identity{}, nil
	})

	assert.False(t, p.Current().Valid())
	assert.False(t, notified, "a zero lookup must not announce a sign-in")
}

func TestProvider_ResetBehavesAsSignOut(t *testing.T) {
	p := newProvider()
	p.SignIn(session.Identity{ID: "u1"})

	notified := false
	p.Subscribe(func(id session.Identity) { notified = !id.Valid() })

	p.Reset()

	assert.True(t, notified)
	assert.False(t, p.Current().Valid())
}
