package storage

import (
	"context"
	"sync"

	"hockeystats-api/internal/models"
)

// MemoryItemStore is an in-memory implementation of ItemStore for tests and
// local runs. FailWith makes every subsequent call fail, which simulates an
// outage of the real backend.
type MemoryItemStore struct {
	mu     sync.RWMutex
	items  map[string]models.Item
	err    error
	closed bool
	puts   int
	gets   int
}

// NewMemoryItemStore creates a new MemoryItemStore instance
func NewMemoryItemStore() *MemoryItemStore {
	return &MemoryItemStore{
		items: make(map[string]models.Item),
	}
}

// Put implements ItemStore.Put
func (m *MemoryItemStore) Put(ctx context.Context, item *models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.puts++
	if err := m.check(); err != nil {
		return NewStorageError("Put", keyOf(item), err)
	}
	if item == nil || item.ID == "" {
		return NewStorageError("Put", "", ErrInvalidKey)
	}

	m.items[item.ID] = *item
	return nil
}

// Get implements ItemStore.Get
func (m *MemoryItemStore) Get(ctx context.Context, id string) (*models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gets++
	if err := m.check(); err != nil {
		return nil, NewStorageError("Get", id, err)
	}
	if id == "" {
		return nil, NewStorageError("Get", id, ErrInvalidKey)
	}

	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// Close implements ItemStore.Close
func (m *MemoryItemStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// FailWith makes all later operations return err. Passing nil restores the store.
func (m *MemoryItemStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many Put and Get calls reached the store
func (m *MemoryItemStore) Calls() (puts, gets int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.puts, m.gets
}

// Len returns the number of stored items
func (m *MemoryItemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *MemoryItemStore) check() error {
	if m.closed {
		return ErrClosed
	}
	return m.err
}

func keyOf(item *models.Item) string {
	if item == nil {
		return ""
	}
	return item.ID
}
