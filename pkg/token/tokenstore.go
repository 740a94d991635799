package tokenstore

import (
	"sync"
	"time"

	"SantaChat/pkg/cache"
)

// RevocationStore tracks logged-out JWT ids until their natural expiry.
type RevocationStore interface {
	Revoke(jti string, ttl time.Duration)
	IsRevoked(jti string) bool
}

var (
	mu    sync.RWMutex
	store RevocationStore = NewMemoryStore(512)
)

// Use swaps the process-wide store (e.g. for Redis in multi-instance setups).
func Use(s RevocationStore) {
	if s == nil {
		return
	}
	mu.Lock()
	store = s
	mu.Unlock()
}

func RevokeToken(jti string, ttl time.Duration) {
	if jti == "" {
		return
	}
	mu.RLock()
	s := store
	mu.RUnlock()
	s.Revoke(jti, ttl)
}

func IsRevoked(jti string) bool {
	if jti == "" {
		return false
	}
	mu.RLock()
	s := store
	mu.RUnlock()
	return s.IsRevoked(jti)
}

// MemoryStore keeps revoked ids in a TTL cache; entries drop off once the
// token they belong to could no longer validate anyway.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore(maxItems int) *MemoryStore {
	return &MemoryStore{c: cache.New(maxItems)}
}

func (m *MemoryStore) Revoke(jti string, ttl time.Duration) {
	m.c.Set(jti, struct{}{}, ttl)
}

func (m *MemoryStore) IsRevoked(jti string) bool {
	_, ok := m.c.Get(jti)
	return ok
}
