package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/madlen/chat-backend/internal/adapter/openrouter"
	"github.com/madlen/chat-backend/internal/domain"
)

func postChat(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Chat(c)
	assert.NoError(t, err)
	return rec
}

func TestChatScenario(t *testing.T) {
	// Stubbed upstream returning one completion choice.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"m/free","choices":[{"index":0,"message":{"role":"assistant","content":"hello"},"finish_reason":"stop"}],"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2}}`)
	}))
	defer upstream.Close()

	client := openrouter.NewClient(upstream.URL, "test-key", "", "", time.Second)
	h, _ := newTestHandler(t, client)
	e := echo.New()

	// Create a session with no title.
	req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewBufferString(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	assert.NoError(t, h.CreateSession(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var created domain.SessionResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "New Chat", created.Title)

	// Chat against the stubbed upstream.
	rec = postChat(t, h, `{"model_id":"m/free","session_id":1,"messages":[{"role":"user","content":"hi"}]}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The upstream body comes back untouched, usage included.
	var chatResp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chatResp))
	assert.Contains(t, chatResp, "usage")
	assert.Contains(t, chatResp, "choices")

	// Read the turn back.
	req = httptest.NewRequest(http.MethodGet, "/sessions/1/messages", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues("1")
	assert.NoError(t, h.GetSessionMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var listResp domain.ListMessagesResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Equal(t, []domain.MessageResponse{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}, listResp.Messages)
}

func TestChatValidationEmptyMessages(t *testing.T) {
	h, _ := newTestHandler(t, openrouter.NewMockClient())

	rec := postChat(t, h, `{"model_id":"m/free","session_id":1,"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp domain.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Detail)
}

func TestChatInvalidBody(t *testing.T) {
	h, _ := newTestHandler(t, openrouter.NewMockClient())

	rec := postChat(t, h, `{"model_id": 7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatUpstreamErrorKeepsStatusAndWritesNothing(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":{"message":"insufficient credits"}}`)
	}))
	defer upstream.Close()

	client := openrouter.NewClient(upstream.URL, "test-key", "", "", time.Second)
	h, store := newTestHandler(t, client)

	rec := postChat(t, h, `{"model_id":"m/free","session_id":1,"messages":[{"role":"user","content":"hi"}]}`)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	var resp domain.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "insufficient credits", resp.Detail)

	messages, err := store.ListMessages(context.Background(), 1)
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestChatMalformedUpstreamIsServerError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer upstream.Close()

	client := openrouter.NewClient(upstream.URL, "test-key", "", "", time.Second)
	h, store := newTestHandler(t, client)

	rec := postChat(t, h, `{"model_id":"m/free","session_id":1,"messages":[{"role":"user","content":"hi"}]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	messages, err := store.ListMessages(context.Background(), 1)
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestChatStructuredContentForwardedAndFlattened(t *testing.T) {
	var upstreamBody []byte
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"a cat"}}]}`)
	}))
	defer upstream.Close()

	client := openrouter.NewClient(upstream.URL, "test-key", "", "", time.Second)
	h, store := newTestHandler(t, client)

	body := `{"model_id":"m/free","session_id":1,"messages":[{"role":"user","content":[{"type":"text","text":"what is this?"},{"type":"image_url","image_url":{"url":"data:image/png;base64,AAAA"}}]}]}`
	rec := postChat(t, h, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The upstream request keeps the structured shape.
	var sent struct {
		Messages []struct {
			Content []domain.ContentPart `json:"content"`
		} `json:"messages"`
	}
	assert.NoError(t, json.Unmarshal(upstreamBody, &sent))
	if assert.Len(t, sent.Messages, 1) && assert.Len(t, sent.Messages[0].Content, 2) {
		assert.Equal(t, "text", sent.Messages[0].Content[0].Type)
		assert.Equal(t, "image_url", sent.Messages[0].Content[1].Type)
	}

	// The store gets the placeholder, never the structured payload.
	messages, err := store.ListMessages(context.Background(), 1)
	assert.NoError(t, err)
	if assert.Len(t, messages, 2) {
		assert.Equal(t, domain.StoredImagePlaceholder, messages[0].Content)
		assert.Equal(t, "a cat", messages[1].Content)
	}
}
