package service

import (
	"context"
	"fmt"

	"github.com/madlen/chat-backend/internal/domain"
)

// DefaultSessionTitle is used when a session is created without a title.
const DefaultSessionTitle = "New Chat"

// CreateSession creates a new session, applying the default title when none
// is given.
func (s *Service) CreateSession(ctx context.Context, title string) (*domain.Session, error) {
	if title == "" {
		title = DefaultSessionTitle
	}
	session, err := s.store.CreateSession(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// ListSessions returns all sessions, newest first.
func (s *Service) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// GetMessages returns a session's messages in ascending timestamp order.
func (s *Service) GetMessages(ctx context.Context, sessionID int64) ([]domain.Message, error) {
	messages, err := s.store.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}
