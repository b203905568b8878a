package composer

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// hashMemo holds declaration hashes for the lifetime of a process.
// Concurrent requests for a key share one computation; finished values are
// never recomputed. Failures are not remembered, so a later request retries.
type hashMemo struct {
	mu     sync.RWMutex
	values map[string]string
	group  singleflight.Group
}

func newHashMemo() *hashMemo {
	return &hashMemo{values: make(map[string]string)}
}

func (m *hashMemo) lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *hashMemo) get(key string, compute func() (string, error)) (string, error) {
	if v, ok := m.lookup(key); ok {
		return v, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		// A flight that finished between lookup and Do already stored the value.
		if v, ok := m.lookup(key); ok {
			return v, nil
		}
		h, err := compute()
		if err != nil {
			return "", err
		}
		m.mu.Lock()
		m.values[key] = h
		m.mu.Unlock()
		return h, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil //nolint:forcetypeassert // the flight only returns strings
}
