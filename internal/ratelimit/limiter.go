package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cora/internal/store"
)

// Limiter counts requests per key in a fixed window backed by an external
// store with expiry. Atomicity of the count depends on the backing store; a
// racy backend can under-count slightly, which is accepted slack. When the
// store errors or holds no data the limiter allows the request (fail open).
type Limiter struct {
	store store.Store
	rules []PathRule
	now   func() time.Time
}

func New(counterStore store.Store) *Limiter {
	return &Limiter{
		store: counterStore,
		rules: DefaultPathRules(),
		now:   time.Now,
	}
}

// ClassFor picks the limit class for a request path. Rules are ordered most
// specific first, so the longest matching prefix wins; unmatched paths fall
// back to the default class.
func (l *Limiter) ClassFor(path string) Class {
	for _, rule := range l.rules {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule.Class
		}
	}
	return DefaultClass
}

// Key builds the counter key for an identity within a class namespace.
func Key(class Class, identity string) string {
	return fmt.Sprintf("%s:%s", class.Name, identity)
}

// IsAllowed decides whether the request for key may proceed and, when it may,
// records it. A denied request is not counted.
func (l *Limiter) IsAllowed(ctx context.Context, class Class, key string) bool {
	count, ok := l.currentCount(ctx, key)

	if !ok {
		// First request in the window, or the store is unavailable.
		_ = l.store.Set(ctx, key, "1", class.Window)
		return true
	}

	if count >= class.MaxRequests {
		return false
	}

	_ = l.store.Set(ctx, key, strconv.Itoa(count+1), class.Window)
	return true
}

// Remaining reports the unused quota for key, never negative. An absent key
// has the full quota.
func (l *Limiter) Remaining(ctx context.Context, class Class, key string) int {
	count, ok := l.currentCount(ctx, key)

	if !ok {
		return class.MaxRequests
	}

	remaining := class.MaxRequests - count
	if remaining < 0 {
		return 0
	}

	return remaining
}

// ResetTime reports when the window for key expires. If the store cannot
// report a TTL the full window length is assumed.
func (l *Limiter) ResetTime(ctx context.Context, class Class, key string) time.Time {
	ttl, ok, err := l.store.TTL(ctx, key)

	if err != nil || !ok || ttl <= 0 {
		return l.now().Add(class.Window)
	}

	return l.now().Add(ttl)
}

func (l *Limiter) currentCount(ctx context.Context, key string) (int, bool) {
	value, exists, err := l.store.Get(ctx, key)

	if err != nil || !exists {
		return 0, false
	}

	count, err := strconv.Atoi(value)

	if err != nil {
		// Garbage in the store counts for nothing.
		return 0, false
	}

	return count, true
}
