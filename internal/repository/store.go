// Package repository defines the storage interface and its SQLite implementation.
package repository

import (
	"context"

	"github.com/madlen/chat-backend/internal/domain"
)

// Store defines the interface for data persistence.
type Store interface {
	// Session operations
	CreateSession(ctx context.Context, title string) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)

	// Message operations. AppendMessage does not check that the session
	// exists; the caller is trusted. Writes are applied in call order.
	AppendMessage(ctx context.Context, sessionID int64, role, content string) error
	ListMessages(ctx context.Context, sessionID int64) ([]domain.Message, error)

	// Lifecycle
	Close() error
}
