package listview

import "sync"

// Store holds one page's in-memory collection. The fetcher replaces it
// wholesale; the mutation dispatcher patches it by id. All access goes
// through the mutex so concurrent requests never observe a partial
// write.
type Store[R any] struct {
	mu      sync.RWMutex
	records []R
	idFn    func(R) string
}

func NewStore[R any](idFn func(R) string) *Store[R] {
	return &Store[R]{idFn: idFn}
}

// Replace swaps in a freshly fetched collection. Full replace, no
// merging: the latest completed fetch wins.
func (s *Store[R]) Replace(records []R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

// Append adds the server-confirmed record after a successful create.
func (s *Store[R]) Append(r R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// ReplaceByID swaps the record whose id matches for the server-returned
// version. Returns false when no record matches.
func (s *Store[R]) ReplaceByID(r R) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.idFn(r)
	for i := range s.records {
		if s.idFn(s.records[i]) == id {
			s.records[i] = r
			return true
		}
	}
	return false
}

// RemoveByID drops the record whose id matches. Returns false when no
// record matches.
func (s *Store[R]) RemoveByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.idFn(s.records[i]) == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the collection for read-side pipelines.
func (s *Store[R]) Snapshot() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]R, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the current collection size.
func (s *Store[R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
