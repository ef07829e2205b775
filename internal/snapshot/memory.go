package snapshot

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is a Store that keeps snapshots in memory. It is used when no
// durable storage is needed, e.g. in tests.
type MemoryStore struct {
	mu          sync.Mutex
	data        map[string][]byte
	quarantined map[string][][]byte

	// FailSave makes Save return an error when set.
	FailSave error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:        make(map[string][]byte),
		quarantined: make(map[string][][]byte),
	}
}

func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return append([]byte(nil), data...), nil
}

func (m *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave != nil {
		return m.FailSave
	}

	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStore) Quarantine(_ context.Context, key string, data []byte, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.quarantined[key] = append(m.quarantined[key], append([]byte(nil), data...))
	return nil
}

// Quarantined returns the blobs quarantined for key.
func (m *MemoryStore) Quarantined(key string) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.quarantined[key]
}
