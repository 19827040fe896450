package store

import (
	"context"
	"time"
)

// NoopStore is the disabled/degraded backend. It never holds data, so every
// lookup reports an absent key and the rate limiter treats each request as
// first in its window.
type NoopStore struct{}

var _ Store = (*NoopStore)(nil)

func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (ns *NoopStore) Get(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (ns *NoopStore) Set(_ context.Context, _ string, _ string, _ time.Duration) error {
	return nil
}

func (ns *NoopStore) TTL(_ context.Context, _ string) (time.Duration, bool, error) {
	return 0, false, nil
}
