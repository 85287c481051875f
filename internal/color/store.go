package color

import "sync"

// Assignment is the color given to one event id and the bucket/index
// that produced it.
type Assignment struct {
	Color  string `json:"color"`
	Label  string `json:"label"`
	Bucket int    `json:"bucket"`
	Index  int    `json:"index"`
}

// Store memoizes assignments per event id for the life of a session.
// Entries are never evicted.
type Store struct {
	mu sync.RWMutex
	m  map[string]Assignment
}

func NewStore() *Store {
	return &Store{m: make(map[string]Assignment)}
}

func (s *Store) get(id string) (Assignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.m[id]
	return a, ok
}

// getOrCreate returns the stored assignment, calling create under the
// write lock only on first sight of id.
func (s *Store) getOrCreate(id string, create func() Assignment) Assignment {
	if a, ok := s.get(id); ok {
		return a
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.m[id]; ok {
		return a
	}
	a := create()
	s.m[id] = a
	return a
}
