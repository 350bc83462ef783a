package timeline

import (
	"fmt"
	"sync"
)

// A Store represents a keyed collection of timelines. A Store can be used
// simultaneously from multiple goroutines. Timelines are immutable, so the
// store shares handles instead of copying.
type Store[T any] struct {
	m  map[string]*Timeline[T]
	mu sync.RWMutex
}

// NewStore creates and initializes a new Store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{m: make(map[string]*Timeline[T])}
}

// Put adds tl to the store using key as its identifier. If a timeline already
// exists for the identifier it is silently replaced.
func (s *Store[T]) Put(key string, tl *Timeline[T]) {
	s.mu.Lock()
	s.m[key] = tl
	s.mu.Unlock()
}

// Get returns the timeline associated to key. The second return value is true
// if the key exists in the store and false if not.
func (s *Store[T]) Get(key string) (*Timeline[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tl, ok := s.m[key]
	return tl, ok
}

// Delete removes the timeline associated to key, if any.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Keys returns the identifiers known in the store.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	return keys
}

// CrossKeys returns the cross product of the timelines associated to keys, in
// key order. It fails with ErrUnknownKey if a key does not exist, and
// otherwise follows the CrossProduct contract.
func (s *Store[T]) CrossKeys(keys ...string) (*Timeline[[]T], error) {
	s.mu.RLock()
	timelines := make([]*Timeline[T], len(keys))
	for i, k := range keys {
		tl, ok := s.m[k]
		if !ok {
			s.mu.RUnlock()
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, k)
		}
		timelines[i] = tl
	}
	s.mu.RUnlock()
	return CrossProduct(timelines)
}
