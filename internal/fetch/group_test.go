package fetch_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Mahidhar1516/GNI/internal/fetch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_AppliesCurrentResult(t *testing.T) {
	g := fetch.NewGroup()

	result, applied, err := g.Do(context.Background(), "schedule:u1:3", func(ctx context.Context) (interface{}, error) {
		return "wednesday", nil
	})

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "wednesday", result)
}

func TestGroup_SupersededResultDiscarded(t *testing.T) {
	g := fetch.NewGroup()

	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)

	var slowApplied bool
	go func() {
		defer wg.Done()
		_, applied, _ := g.Do(context.Background(), "schedule:u1", func(ctx context.Context) (interface{}, error) {
			close(started)
			<-release
			return "stale", nil
		})
		slowApplied = applied
	}()

	<-started

	// A newer fetch for the same inputs supersedes the slow one.
	result, applied, err := g.Do(context.Background(), "schedule:u1", func(ctx context.Context) (interface{}, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "fresh", result)

	close(release)
	wg.Wait()

	assert.False(t, slowApplied, "superseded result must never be applied")
}

func TestGroup_SupersedingCancelsPreviousContext(t *testing.T) {
	g := fetch.NewGroup()

	started := make(chan struct{})
	cancelled := make(chan struct{})

	go g.Do(context.Background(), "k", func(ctx context.Context) (interface{}, error) {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return nil, ctx.Err()
	})

	<-started
	_, _, _ = g.Do(context.Background(), "k", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	<-cancelled
}

func TestGroup_IndependentKeysDoNotInterfere(t *testing.T) {
	g := fetch.NewGroup()

	r1, applied1, err1 := g.Do(context.Background(), "profile:u1", func(ctx context.Context) (interface{}, error) {
		return "p", nil
	})
	r2, applied2, err2 := g.Do(context.Background(), "courses:u1", func(ctx context.Context) (interface{}, error) {
		return "c", nil
	})

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, applied1)
	assert.True(t, applied2)
	assert.Equal(t, "p", r1)
	assert.Equal(t, "c", r2)
}

func TestGroup_ResetDiscardsInFlight(t *testing.T) {
	g := fetch.NewGroup()

	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)

	var applied bool
	go func() {
		defer wg.Done()
		_, a, _ := g.Do(context.Background(), "dashboard:u1", func(ctx context.Context) (interface{}, error) {
			close(started)
			<-release
			return "old identity data", nil
		})
		applied = a
	}()

	<-started
	g.Reset()
	close(release)
	wg.Wait()

	assert.False(t, applied, "results in flight at reset must be discarded")
}

func TestGroup_IdempotentForUnchangedInputs(t *testing.T) {
	g := fetch.NewGroup()

	fn := func(ctx context.Context) (interface{}, error) { return 42, nil }

	first, appliedFirst, _ := g.Do(context.Background(), "k", fn)
	second, appliedSecond, _ := g.Do(context.Background(), "k", fn)

	assert.True(t, appliedFirst)
	assert.True(t, appliedSecond)
	assert.Equal(t, first, second)
}
