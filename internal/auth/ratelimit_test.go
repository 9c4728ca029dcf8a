package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"roofsite/internal/models"
)

func TestLimitPolicyApply(t *testing.T) {
	policy := NewLimitPolicy(5, time.Minute)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	entry, ok := policy.Apply(nil, start)
	require.True(t, ok)
	require.Equal(t, models.LoginAttempt{Count: 1, LastAttempt: start}, entry)

	for i := 2; i <= 5; i++ {
		at := start.Add(time.Duration(i) * time.Second)
		entry, ok = policy.Apply(&entry, at)
		require.True(t, ok)
		require.Equal(t, i, entry.Count)
		require.Equal(t, at, entry.LastAttempt)
	}

	blockedAt := start.Add(10 * time.Second)
	blocked, ok := policy.Apply(&entry, blockedAt)
	require.False(t, ok, "sixth attempt inside the window is rejected")
	require.Equal(t, entry, blocked, "a rejected attempt leaves the entry untouched")

	resetAt := entry.LastAttempt.Add(time.Minute + time.Millisecond)
	entry, ok = policy.Apply(&blocked, resetAt)
	require.True(t, ok)
	require.Equal(t, 1, entry.Count)
}

func TestNewLimitPolicyDefaults(t *testing.T) {
	p := NewLimitPolicy(0, 0)
	require.Equal(t, DefaultLoginAttempts, p.Attempts)
	require.Equal(t, DefaultLoginWindow, p.Window)
}

func TestMemoryAttemptStore(t *testing.T) {
	store := NewMemoryAttemptStore(NewLimitPolicy(5, time.Minute))
	defer store.Stop()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := store.Hit(ctx, "10.0.0.1", time.Now())
		require.NoError(t, err)
		require.True(t, ok, "attempt %d should be allowed", i+1)
	}

	ok, err := store.Hit(ctx, "10.0.0.1", time.Now())
	require.NoError(t, err)
	require.False(t, ok, "sixth attempt within the window should be rejected")

	ok, err = store.Hit(ctx, "10.0.0.2", time.Now())
	require.NoError(t, err)
	require.True(t, ok, "other clients are counted separately")
	require.Equal(t, 2, store.Len())
}

func TestMemoryAttemptStoreWindowExpires(t *testing.T) {
	store := NewMemoryAttemptStore(NewLimitPolicy(1, 50*time.Millisecond))
	defer store.Stop()
	ctx := context.Background()

	ok, _ := store.Hit(ctx, "client", time.Now())
	require.True(t, ok)
	ok, _ = store.Hit(ctx, "client", time.Now())
	require.False(t, ok)

	time.Sleep(120 * time.Millisecond)

	ok, _ = store.Hit(ctx, "client", time.Now())
	require.True(t, ok)
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/admin-login", nil)
	r.RemoteAddr = "192.0.2.10:5555"
	require.Equal(t, "192.0.2.10", ClientKey(r))

	r.Header.Set("X-Real-IP", "198.51.100.7")
	require.Equal(t, "198.51.100.7", ClientKey(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	require.Equal(t, "203.0.113.5", ClientKey(r))

	bare := httptest.NewRequest("POST", "/api/admin-login", nil)
	bare.RemoteAddr = ""
	require.Equal(t, "unknown", ClientKey(bare))
}

func TestCheckAttempt(t *testing.T) {
	store := NewMemoryAttemptStore(NewLimitPolicy(1, time.Minute))
	defer store.Stop()
	ctx := context.Background()

	require.NoError(t, CheckAttempt(ctx, store, "k", time.Now()))
	require.ErrorIs(t, CheckAttempt(ctx, store, "k", time.Now()), ErrRateLimited)
}
