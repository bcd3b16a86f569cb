// Package memory holds the process-wide hotel list. The list is installed
// wholesale after a successful refresh and read as an immutable snapshot;
// individual hotels are never mutated in place.
package memory

import (
	"sync"
	"time"

	"stayfinder/internal/domain"
)

type Store struct {
	mu      sync.RWMutex
	hotels  []domain.Hotel
	byID    map[int64]int
	version uint64

	refreshedAt time.Time
	lastError   string
}

func New() *Store {
	return &Store{byID: map[int64]int{}}
}

// Replace installs a new snapshot and returns its version. The slice is
// copied so later caller mutations cannot leak into served snapshots.
func (s *Store) Replace(hotels []domain.Hotel) uint64 {
	cp := make([]domain.Hotel, len(hotels))
	copy(cp, hotels)
	idx := make(map[int64]int, len(cp))
	for i, h := range cp {
		idx[h.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels = cp
	s.byID = idx
	s.version++
	s.refreshedAt = time.Now().UTC()
	s.lastError = ""
	return s.version
}

// Snapshot returns the current list and its version. Callers must treat
// the slice as read-only.
func (s *Store) Snapshot() ([]domain.Hotel, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotels, s.version
}

func (s *Store) Get(id int64) (domain.Hotel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Hotel{}, false
	}
	return s.hotels[i], true
}

func (s *Store) Stats() domain.SnapshotStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SnapshotStats{
		Version:     s.version,
		Count:       len(s.hotels),
		RefreshedAt: s.refreshedAt,
		LastError:   s.lastError,
	}
}

// SetRefreshError records a failed refresh without touching the snapshot.
func (s *Store) SetRefreshError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = msg
}
