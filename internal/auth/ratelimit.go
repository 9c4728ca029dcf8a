package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"roofsite/internal/models"
)

const (
	DefaultLoginAttempts = 5
	DefaultLoginWindow   = time.Minute
)

var ErrRateLimited = errors.New("too many login attempts")

// AttemptStore counts login attempts per client key.
type AttemptStore interface {
	// Hit records an attempt made at now and reports whether it may proceed.
	Hit(ctx context.Context, key string, now time.Time) (bool, error)
}

// CheckAttempt records one attempt for key and returns ErrRateLimited when
// the client is over its limit.
func CheckAttempt(ctx context.Context, store AttemptStore, key string, now time.Time) error {
	ok, err := store.Hit(ctx, key, now)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	if !ok {
		return ErrRateLimited
	}
	return nil
}

// LimitPolicy allows Attempts per client until Window has passed since the
// last counted attempt. Rejected attempts do not extend the window.
type LimitPolicy struct {
	Attempts int
	Window   time.Duration
}

func NewLimitPolicy(attempts int, window time.Duration) LimitPolicy {
	if attempts <= 0 {
		attempts = DefaultLoginAttempts
	}
	if window <= 0 {
		window = DefaultLoginWindow
	}
	return LimitPolicy{Attempts: attempts, Window: window}
}

// Apply returns the entry after one more attempt and whether it is allowed.
// prev is nil for a client that has no entry.
func (p LimitPolicy) Apply(prev *models.LoginAttempt, now time.Time) (models.LoginAttempt, bool) {
	if prev == nil || now.Sub(prev.LastAttempt) > p.Window {
		return models.LoginAttempt{Count: 1, LastAttempt: now}, true
	}
	if prev.Count >= p.Attempts {
		return *prev, false
	}
	return models.LoginAttempt{Count: prev.Count + 1, LastAttempt: now}, true
}

// MemoryAttemptStore keeps attempts in process memory. Entries expire one
// window after their last counted attempt and are lost on restart.
type MemoryAttemptStore struct {
	mu     sync.Mutex
	policy LimitPolicy
	cache  *ttlcache.Cache[string, models.LoginAttempt]
}

func NewMemoryAttemptStore(policy LimitPolicy) *MemoryAttemptStore {
	cache := ttlcache.New[string, models.LoginAttempt](
		ttlcache.WithTTL[string, models.LoginAttempt](policy.Window),
		ttlcache.WithDisableTouchOnHit[string, models.LoginAttempt](),
	)
	go cache.Start()

	return &MemoryAttemptStore{
		policy: policy,
		cache:  cache,
	}
}

func (s *MemoryAttemptStore) Hit(_ context.Context, key string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prev *models.LoginAttempt
	if item := s.cache.Get(key); item != nil {
		v := item.Value()
		prev = &v
	}

	next, ok := s.policy.Apply(prev, now)
	if ok {
		s.cache.Set(key, next, ttlcache.DefaultTTL)
	}
	return ok, nil
}

func (s *MemoryAttemptStore) Len() int {
	return s.cache.Len()
}

func (s *MemoryAttemptStore) Stop() {
	s.cache.Stop()
}

// ClientKey identifies the caller for rate limiting: the first forwarded hop,
// then X-Real-IP, then the remote host.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	if r.RemoteAddr != "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		return host
	}
	return "unknown"
}
