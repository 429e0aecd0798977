package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

type entry struct {
	data    []byte
	expires time.Time
}

// memoryStore implements Store in process
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-process store. A non-positive ttl uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) Store {
	return newMemoryStore(ttl, time.Now)
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     now,
	}
}

func (s *memoryStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || !s.now().Before(e.expires) {
		return false, nil
	}
	if err := json.Unmarshal(e.data, dst); err != nil {
		return false, fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	return true, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}

	s.mu.Lock()
	s.entries[key] = entry{data: data, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Invalidate(ctx context.Context, prefix string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	return nil
}

func (s *memoryStore) Health(ctx context.Context) error {
	return ctx.Err()
}

func (s *memoryStore) Close() error {
	return nil
}
