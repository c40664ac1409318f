package session

import (
	"context"
	"sync"

	"tchukudu-service/src/pkg/kv"
	"tchukudu-service/src/pkg/log"
)

// Manager hands out one Store per session id, hydrating each exactly once.
type Manager struct {
	log log.Log
	kv  kv.Store

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(kvStore kv.Store, logger log.Log) *Manager {
	return &Manager{
		log:    logger,
		kv:     kvStore,
		stores: make(map[string]*Store),
	}
}

func (m *Manager) Session(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if store, ok := m.stores[sessionID]; ok {
		return store
	}
	store := NewStore(ctx, m.kv, m.log, sessionID)
	m.stores[sessionID] = store
	return store
}

// Drop forgets a cached store, forcing a fresh hydration next time. Used
// after logout so a stale in-memory session cannot outlive its keys.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
