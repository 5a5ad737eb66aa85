package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	principal Principal
	expiresAt time.Time
}

// MemoryStore is an in-process session store with TTL eviction.
// Default backend when Redis is unavailable.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	done    chan struct{}
}

// NewMemoryStore creates a MemoryStore and starts its janitor.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) janitor() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

func (s *MemoryStore) Set(_ context.Context, id string, p *Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = memoryEntry{principal: *p, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}
	p := e.principal
	return &p, nil
}

func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() {
	close(s.done)
}
