package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/madlen/chat-backend/internal/domain"
)

// MockClient is a mock implementation of CompletionClient for testing.
type MockClient struct {
	// Reply overrides the generated completion text when set.
	Reply string
	// Err is returned from every call when set.
	Err error
	// Models is returned from ListModels.
	Models []Model
}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements CompletionClient.
var _ CompletionClient = (*MockClient)(nil)

// CreateChatCompletion returns a canned completion shaped like a real
// upstream response body.
func (m *MockClient) CreateChatCompletion(ctx context.Context, model string, messages []domain.ChatMessage) (*Completion, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	text := m.Reply
	if text == "" {
		text = m.generateMockReply(messages)
	}

	raw, err := json.Marshal(map[string]interface{}{
		"id":      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   model,
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]string{
					"role":    "assistant",
					"content": text,
				},
				"finish_reason": "stop",
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &Completion{Text: text, Raw: raw}, nil
}

// ListModels returns the configured catalog, or a small default one.
func (m *MockClient) ListModels(ctx context.Context) ([]Model, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Models != nil {
		return m.Models, nil
	}
	return []Model{
		{
			ID:            "mock/free-model",
			Name:          "Mock Free Model",
			ContextLength: 8192,
			Pricing:       Pricing{Prompt: "0", Completion: "0"},
		},
	}, nil
}

// generateMockReply echoes the last user message.
func (m *MockClient) generateMockReply(messages []domain.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return fmt.Sprintf("[MOCK] Received your message: %q.", messages[i].Content.Storable())
		}
	}
	return "[MOCK] This is a mock completion."
}
