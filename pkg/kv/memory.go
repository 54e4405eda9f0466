package kv

import (
	"context"
	"sync"
)

// NewMemory returns an ephemeral Store. Tests use it to make persistence
// observable without touching disk.
func NewMemory() Store {
	return &memory{data: make(map[string]string)}
}

type memory struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
