package cas

import "time"

// NewStoreAt creates a Store that archives paths relative to target.
func NewStoreAt(dir, target string) (*Store, error) {
	return newStore(dir, target)
}

// SetClock overrides the entry timestamp source.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}
