package store

import (
	"context"
	"slices"
	"sync"
	"time"
)

type memoryField struct {
	key    string
	value  string
	expire time.Time
}

// MemoryStore is an in-process Store with per-key expiry. Entries are removed
// lazily on read.
type MemoryStore struct {
	fields []memoryField
	mutex  sync.Mutex
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		fields: make([]memoryField, 0),
		now:    time.Now,
	}
}

func (ms *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	for i, field := range ms.fields {
		if field.key == key {
			if ms.now().After(field.expire) {
				ms.fields = slices.Delete(ms.fields, i, i+1)
				return "", false, nil
			}
			return field.value, true, nil
		}
	}

	return "", false, nil
}

func (ms *MemoryStore) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	expire := ms.now().Add(ttl)

	for i, field := range ms.fields {
		if field.key == key {
			ms.fields[i].value = value
			ms.fields[i].expire = expire
			return nil
		}
	}

	ms.fields = append(ms.fields, memoryField{
		key:    key,
		value:  value,
		expire: expire,
	})

	return nil
}

func (ms *MemoryStore) TTL(_ context.Context, key string) (time.Duration, bool, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	for i, field := range ms.fields {
		if field.key == key {
			remaining := field.expire.Sub(ms.now())
			if remaining <= 0 {
				ms.fields = slices.Delete(ms.fields, i, i+1)
				return 0, false, nil
			}
			return remaining, true, nil
		}
	}

	return 0, false, nil
}

func (ms *MemoryStore) Delete(_ context.Context, key string) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	for i, field := range ms.fields {
		if field.key == key {
			ms.fields = slices.Delete(ms.fields, i, i+1)
			return
		}
	}
}
