package identity

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore - временное in-memory хранилище
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(name string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.entries[name]
	if !exists || entry.Expired(m.now()) {
		return Entry{}, ErrEntryNotFound
	}
	return entry, nil
}

func (m *MemoryStore) Set(entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[entry.Name] = entry
	return nil
}

func (m *MemoryStore) Names() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
