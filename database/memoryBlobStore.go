package database

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryBlob struct {
	data     []byte
	modified time.Time
}

// MemoryBlobStore keeps blobs in process memory. It backs tests and demo runs.
type MemoryBlobStore struct {
	mu    sync.Mutex
	blobs map[string]memoryBlob
	now   func() time.Time
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string]memoryBlob), now: time.Now}
}

// WithClock replaces the timestamp source used by Put.
func (m *MemoryBlobStore) WithClock(now func() time.Time) *MemoryBlobStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
	return m
}

func (m *MemoryBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, unavailable("get", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, notFound(key)
	}
	out := make([]byte, len(blob.data))
	copy(out, blob.data)
	return out, nil
}

func (m *MemoryBlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return unavailable("put", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = memoryBlob{data: stored, modified: m.now().UTC()}
	return nil
}

func (m *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return unavailable("delete", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[key]; !ok {
		return notFound(key)
	}
	delete(m.blobs, key)
	return nil
}

func (m *MemoryBlobStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("list", "", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.blobs))
	for key := range m.blobs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryBlobStore) Stat(ctx context.Context, key string) (time.Time, error) {
	if err := ValidateKey(key); err != nil {
		return time.Time{}, err
	}
	if err := ctx.Err(); err != nil {
		return time.Time{}, unavailable("stat", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.blobs[key]
	if !ok {
		return time.Time{}, notFound(key)
	}
	return blob.modified, nil
}
