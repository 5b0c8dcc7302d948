// Package service implements the chat relay's request handling logic.
package service

import (
	"sync"

	"github.com/madlen/chat-backend/internal/adapter/openrouter"
	"github.com/madlen/chat-backend/internal/config"
	"github.com/madlen/chat-backend/internal/repository"
)

// Service holds the collaborators for request handling. It keeps no state
// across requests beyond the per-session write locks.
type Service struct {
	store    repository.Store
	upstream openrouter.CompletionClient
	config   *config.Config

	locks sessionLocks
}

// New creates a new service.
func New(store repository.Store, upstream openrouter.CompletionClient, cfg *config.Config) *Service {
	return &Service{
		store:    store,
		upstream: upstream,
		config:   cfg,
		locks:    sessionLocks{locks: make(map[int64]*sync.Mutex)},
	}
}

// sessionLocks hands out one mutex per session id so concurrent chat turns on
// the same session cannot interleave their two-message appends.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func (l *sessionLocks) get(sessionID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[sessionID] = lock
	}
	return lock
}
