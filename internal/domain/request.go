package domain

// ChatMessage is one role-tagged entry of an inbound conversation. The full
// list, including history, is forwarded upstream unchanged.
type ChatMessage struct {
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	ModelID   string        `json:"model_id"`
	SessionID int64         `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
}

// CreateSessionRequest is the body of POST /sessions.
type CreateSessionRequest struct {
	Title string `json:"title,omitempty"`
}

// SessionResponse is one entry of the session listing.
type SessionResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// MessageResponse is one entry of the session message listing.
type MessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ListModelsResponse is the body of GET /models.
type ListModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// ListSessionsResponse is the body of GET /sessions.
type ListSessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// ListMessagesResponse is the body of GET /sessions/:session_id/messages.
type ListMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
