package session

import (
	"context"
	"sync"
	"time"

	"github.com/pagecraft/blog/internal/core/domain"
)

// MemoryStore is a process-local ports.SessionStore. Sessions are lost on
// restart; use the Redis store when that matters.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	data    domain.SessionData
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.SessionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, id)
		return nil, domain.ErrSessionNotFound
	}
	data := copyData(e.data)
	return &data, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, data *domain.SessionData, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = memoryEntry{data: copyData(*data), expires: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func copyData(d domain.SessionData) domain.SessionData {
	out := domain.SessionData{UserID: d.UserID}
	if len(d.Flashes) > 0 {
		out.Flashes = append([]string(nil), d.Flashes...)
	}
	return out
}
