// Package cache provides the validation cache mapping raw token strings to
// resolved identity snapshots. Entries are replace-or-absent: they disappear
// on TTL expiry or explicit eviction, never partially updated.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/fenixAlex88/technical-support/internal/domain"
	"github.com/fenixAlex88/technical-support/internal/usecase"
)

type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	identity  domain.Identity
	expiresAt time.Time
	hasExpiry bool
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(ctx context.Context, token string) (*domain.Identity, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[token]
	if !ok {
		return nil, false, nil
	}
	if entry.hasExpiry && time.Now().After(entry.expiresAt) {
		delete(m.entries, token)
		return nil, false, nil
	}
	identity := entry.identity
	return &identity, true, nil
}

func (m *Memory) Put(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := memoryEntry{identity: identity}
	if ttl > 0 {
		entry.hasExpiry = true
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.entries[token] = entry
	return nil
}

func (m *Memory) Evict(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, token)
	return nil
}

var _ usecase.IdentityCache = (*Memory)(nil)
