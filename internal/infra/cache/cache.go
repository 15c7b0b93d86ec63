// Package cache provides a concurrency-safe memoization map shared across
// concurrent resolver batches. Entries live until deleted or cleared; the
// cache itself never evicts.
package cache

import "sync"

// Map is a generic key/value cache safe for concurrent readers and writers.
// The zero value is not usable; construct with New.
type Map[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// New builds an empty cache.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{items: make(map[K]V)}
}

// Get returns the cached value for key, if present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

// Put stores value under key, replacing any previous entry.
func (m *Map[K, V]) Put(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

// PutIfAbsent stores value only when key has no entry yet and reports whether
// the write happened. Placeholder writers use this so a racing real entry is
// never clobbered.
func (m *Map[K, V]) PutIfAbsent(key K, value V) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[key]; ok {
		return false
	}
	m.items[key] = value
	return true
}

// Delete removes the entry for key, if any.
func (m *Map[K, V]) Delete(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

// Clear drops every entry.
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[K]V)
}

// Len returns the number of cached entries.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
