package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It backs tests and the "memory" backend,
// where records live only as long as the process.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

func (m *Memory) Load(ctx context.Context, slot string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.slots[slot]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Save(ctx context.Context, slot string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	m.slots[slot] = cp
	return nil
}

func (m *Memory) Has(ctx context.Context, slot string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.slots[slot]
	return ok, nil
}

func (m *Memory) Delete(ctx context.Context, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, slot)
	return nil
}
