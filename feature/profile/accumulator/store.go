package accumulator

import (
	"sync"

	"profile-exporter/feature/profile/models"
)

// Store is the keyed storage behind an Accumulator.
type Store interface {
	// Get returns the profile stored under identity.
	Get(identity string) (*models.Profile, bool)
	// Put stores p under identity, replacing any previous profile.
	Put(identity string, p *models.Profile)
	// Delete removes the profile stored under identity.
	Delete(identity string)
	// Len returns the number of stored profiles.
	Len() int
}

// MemoryStore is a map-backed Store. Reads may run concurrently with the
// single writer; stored profiles are never modified in place.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*models.Profile
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]*models.Profile)}
}

func (s *MemoryStore) Get(identity string) (*models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[identity]
	return p, ok
}

func (s *MemoryStore) Put(identity string, p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[identity] = p
}

func (s *MemoryStore) Delete(identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, identity)
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
