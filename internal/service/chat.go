package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/madlen/chat-backend/internal/domain"
)

// Chat relays one conversation turn: it validates the request, forwards the
// full message list upstream, and on success appends the user and assistant
// messages to the session, in that order. The raw upstream body is returned
// unchanged so callers keep access to usage metadata.
//
// An upstream failure leaves the store untouched; a storage failure after a
// successful upstream call is surfaced as-is (the completion was already
// billed, nothing is rolled back).
func (s *Service) Chat(ctx context.Context, req *domain.ChatRequest) (json.RawMessage, error) {
	if err := validateChatRequest(req); err != nil {
		return nil, err
	}

	// The last message is the current user turn; flatten it for storage
	// before anything else can fail.
	storable := req.Messages[len(req.Messages)-1].Content.Storable()

	requestID := "chat_" + uuid.New().String()[:8]
	startTime := time.Now()

	completion, err := s.upstream.CreateChatCompletion(ctx, req.ModelID, req.Messages)
	if err != nil {
		log.Printf("ERROR: [%s] upstream call failed after %s: %v", requestID, time.Since(startTime), err)
		return nil, err
	}
	log.Printf("[%s] completion from %s in %s", requestID, req.ModelID, time.Since(startTime))

	// Serialize the two appends per session so concurrent turns cannot
	// interleave their user/assistant pairs. The writes run detached from
	// the request context: once the completion is paid for, a caller
	// disconnect must not leave a half-written turn behind.
	writeCtx := context.WithoutCancel(ctx)
	lock := s.locks.get(req.SessionID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.AppendMessage(writeCtx, req.SessionID, "user", storable); err != nil {
		log.Printf("ERROR: [%s] failed to persist user message: %v", requestID, err)
		return nil, err
	}
	if err := s.store.AppendMessage(writeCtx, req.SessionID, "assistant", completion.Text); err != nil {
		log.Printf("ERROR: [%s] failed to persist assistant message: %v", requestID, err)
		return nil, err
	}

	return completion.Raw, nil
}

func validateChatRequest(req *domain.ChatRequest) error {
	if req.ModelID == "" {
		return &domain.ValidationError{Message: "model_id is required"}
	}
	if req.SessionID <= 0 {
		return &domain.ValidationError{Message: "session_id is required"}
	}
	if len(req.Messages) == 0 {
		return &domain.ValidationError{Message: "messages must not be empty"}
	}
	return nil
}
