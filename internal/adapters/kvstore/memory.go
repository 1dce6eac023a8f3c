package kvstore

import "marknote/internal/ports"

// Memory is an in-process KeyValueStore used in tests and as a throwaway
// backing store.
type Memory struct {
	data map[string]string
}

// Ensure Memory implements KeyValueStore
var _ ports.KeyValueStore = (*Memory)(nil)

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value for key and whether it was present
func (m *Memory) Get(key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

// Set stores a single value
func (m *Memory) Set(key, value string) error {
	m.data[key] = value
	return nil
}

// SetMany stores all pairs
func (m *Memory) SetMany(pairs map[string]string) error {
	for key, value := range pairs {
		m.data[key] = value
	}
	return nil
}

// Delete removes a key
func (m *Memory) Delete(key string) error {
	delete(m.data, key)
	return nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
