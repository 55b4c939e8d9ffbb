package sessioncache

import (
	"context"
	"sync"

	"leaveflow/internal/usecase/balance"

	"github.com/google/uuid"
)

// MemoryStore is an in-process SnapshotStore for tests and redis-less
// development runs.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]balance.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots: make(map[string]balance.Snapshot),
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string, userID uuid.UUID) (*balance.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.slots[sessionID]
	if !ok || snap.UserID != userID {
		return nil, nil
	}
	return &snap, nil
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, snap balance.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[sessionID] = snap
	return nil
}
