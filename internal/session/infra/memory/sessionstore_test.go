package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/go-session-gate/internal/session/infra/memory"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestSessionStore_UnknownSubject(t *testing.T) {
	t.Parallel()
	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Set(context.Background(), now)
	store := memory.NewSessionStore(clock)

	_, ok := store.Get(ctx, "ghost@example.com")
	assert.False(t, ok)
	assert.False(t, store.IsValid(ctx, "ghost@example.com"))
	assert.True(t, store.IsInactive(ctx, "ghost@example.com", time.Hour))

	store.Touch(ctx, "ghost@example.com")
	store.Refresh(ctx, "ghost@example.com", "token", now.Add(time.Hour))
	assert.Zero(t, store.Size())
}

func TestSessionStore_ExpiryAndSweep(t *testing.T) {
	t.Parallel()
	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Set(context.Background(), now)
	store := memory.NewSessionStore(clock)

	store.Create(ctx, "alice@example.com", "token-a", now.Add(60*time.Second))
	store.Create(ctx, "bob@example.com", "token-b", now.Add(time.Hour))
	require.Equal(t, 2, store.Size())
	assert.True(t, store.IsValid(ctx, "alice@example.com"))

	atExpiry := clock.Advance(ctx, 60*time.Second)
	assert.True(t, store.IsValid(atExpiry, "alice@example.com"))
	assert.Zero(t, store.SweepExpired(atExpiry))

	afterExpiry := clock.Advance(ctx, 61*time.Second)
	assert.False(t, store.IsValid(afterExpiry, "alice@example.com"))
	assert.True(t, store.IsValid(afterExpiry, "bob@example.com"))

	assert.Equal(t, 1, store.SweepExpired(afterExpiry))
	assert.Equal(t, 1, store.Size())
	_, ok := store.Get(afterExpiry, "alice@example.com")
	assert.False(t, ok)
}

func TestSessionStore_CreateReplacesPreviousSession(t *testing.T) {
	t.Parallel()
	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Set(context.Background(), now)
	store := memory.NewSessionStore(clock)

	store.Create(ctx, "alice@example.com", "token-1", now.Add(time.Minute))
	store.Create(clock.Advance(ctx, time.Second), "alice@example.com", "token-2", now.Add(time.Hour))

	session, ok := store.Get(ctx, "alice@example.com")
	require.True(t, ok)
	assert.Equal(t, 1, store.Size())
	assert.Equal(t, "token-2", session.Token)
	assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)
	assert.Equal(t, now.Add(time.Second), session.LastActivity)
}

func TestSessionStore_TouchAndRefresh(t *testing.T) {
	t.Parallel()
	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Set(context.Background(), now)
	store := memory.NewSessionStore(clock)

	store.Create(ctx, "alice@example.com", "token-1", now.Add(time.Hour))

	later := clock.Advance(ctx, 90*time.Second)
	assert.True(t, store.IsInactive(later, "alice@example.com", time.Minute))

	store.Touch(later, "alice@example.com")
	assert.False(t, store.IsInactive(later, "alice@example.com", time.Minute))

	store.Refresh(clock.Advance(ctx, 2*time.Minute), "alice@example.com", "token-2", now.Add(2*time.Hour))
	session, ok := store.Get(ctx, "alice@example.com")
	require.True(t, ok)
	assert.Equal(t, "token-2", session.Token)
	assert.Equal(t, now.Add(2*time.Hour), session.ExpiresAt)
	assert.Equal(t, now.Add(2*time.Minute), session.LastActivity)

	store.Remove(ctx, "alice@example.com")
	assert.Zero(t, store.Size())
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Set(context.Background(), now)
	store := memory.NewSessionStore(clock)

	const subjects = 50
	var wg sync.WaitGroup
	for i := 0; i < subjects; i++ {
		subject := fmt.Sprintf("user-%d@example.com", i)
		expiresAt := now.Add(time.Hour)
		if i%2 == 0 {
			expiresAt = now.Add(-time.Second)
		}

		wg.Add(3)
		go func() {
			defer wg.Done()
			store.Create(ctx, subject, "token", expiresAt)
			store.Touch(ctx, subject)
		}()
		go func() {
			defer wg.Done()
			store.IsValid(ctx, subject)
			store.IsInactive(ctx, subject, time.Minute)
		}()
		go func() {
			defer wg.Done()
			store.SweepExpired(ctx)
		}()
	}
	wg.Wait()

	store.SweepExpired(ctx)
	assert.Equal(t, subjects/2, store.Size())
}
