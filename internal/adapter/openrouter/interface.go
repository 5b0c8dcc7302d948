package openrouter

import (
	"context"

	"github.com/madlen/chat-backend/internal/domain"
)

// CompletionClient defines the interface for upstream completion operations.
type CompletionClient interface {
	// CreateChatCompletion sends a single, non-retried completion request.
	CreateChatCompletion(ctx context.Context, model string, messages []domain.ChatMessage) (*Completion, error)

	// ListModels retrieves the upstream model catalog.
	ListModels(ctx context.Context) ([]Model, error)
}

// Ensure Client implements CompletionClient.
var _ CompletionClient = (*Client)(nil)
