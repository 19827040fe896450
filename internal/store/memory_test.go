package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetAndGet(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "login:bob", "2", time.Minute))

	value, exists, err := ms.Get(ctx, "login:bob")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "2", value)
}

func TestMemoryStore_MissingKey(t *testing.T) {
	ms := NewMemoryStore()

	_, exists, err := ms.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, exists)

	_, hasTTL, err := ms.TTL(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, hasTTL)
}

func TestMemoryStore_EntriesExpire(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return now }

	require.NoError(t, ms.Set(ctx, "login:bob", "3", 300*time.Second))

	now = now.Add(299 * time.Second)
	_, exists, err := ms.Get(ctx, "login:bob")
	require.NoError(t, err)
	assert.True(t, exists, "entry should survive until the TTL elapses")

	now = now.Add(2 * time.Second)
	_, exists, err = ms.Get(ctx, "login:bob")
	require.NoError(t, err)
	assert.False(t, exists, "entry should be gone after the TTL elapses")
}

func TestMemoryStore_TTLReportsRemainingLifetime(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return now }

	require.NoError(t, ms.Set(ctx, "login:bob", "1", 300*time.Second))

	now = now.Add(100 * time.Second)
	ttl, hasTTL, err := ms.TTL(ctx, "login:bob")
	require.NoError(t, err)
	assert.True(t, hasTTL)
	assert.Equal(t, 200*time.Second, ttl)
}

func TestMemoryStore_SetRefreshesExpiry(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return now }

	require.NoError(t, ms.Set(ctx, "login:bob", "1", 60*time.Second))
	now = now.Add(50 * time.Second)
	require.NoError(t, ms.Set(ctx, "login:bob", "2", 60*time.Second))
	now = now.Add(50 * time.Second)

	value, exists, err := ms.Get(ctx, "login:bob")
	require.NoError(t, err)
	assert.True(t, exists, "overwrite should reset the clock")
	assert.Equal(t, "2", value)
}

func TestMemoryStore_Delete(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "login:bob", "1", time.Minute))
	ms.Delete(ctx, "login:bob")

	_, exists, err := ms.Get(ctx, "login:bob")
	require.NoError(t, err)
	assert.False(t, exists)
}
