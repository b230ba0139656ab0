package theme

import (
	"sync"
)

// Store persists the selected theme value under StorageKey.
// Load returns "" with a nil error when nothing has been saved yet.
type Store interface {
	Load() (string, error)
	Save(value string) error
}

// MemoryStore keeps the value in process memory
type MemoryStore struct {
	mu    sync.Mutex
	value string
	saves int
}

// NewMemoryStore returns a store pre-filled with value ("" for empty)
func NewMemoryStore(value string) *MemoryStore {
	return &MemoryStore{value: value}
}

func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

func (m *MemoryStore) Save(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.saves++
	return nil
}

// Saves returns how many times Save was called
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Chain reads from the first store holding a value and writes to all of them.
// A failed write is reported after every store was attempted.
type Chain []Store

func (c Chain) Load() (string, error) {
	var firstErr error
	for _, s := range c {
		v, err := s.Load()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if v != "" {
			return v, nil
		}
	}
	return "", firstErr
}

// LoadValid returns the first stored value accept allows, skipping earlier stores
// that hold junk. stale reports that some store disagrees with the winner.
func (c Chain) LoadValid(accept func(string) bool) (value string, stale bool, err error) {
	var firstErr error
	held := make([]string, 0, len(c))
	for _, s := range c {
		v, err := s.Load()
		if err != nil && firstErr == nil {
			firstErr = err
		}
		held = append(held, v)
		if value == "" && v != "" && accept(v) {
			value = v
		}
	}
	if value == "" {
		return "", true, firstErr
	}
	for _, v := range held {
		if v != value {
			stale = true
		}
	}
	return value, stale, nil
}

func (c Chain) Save(value string) error {
	var firstErr error
	for _, s := range c {
		if err := s.Save(value); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
