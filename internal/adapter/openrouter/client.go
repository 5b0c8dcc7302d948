// Package openrouter provides the client for the OpenRouter completion API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/madlen/chat-backend/internal/domain"
)

// Client is the OpenRouter API client. It is stateless; one instance is
// shared across requests.
type Client struct {
	baseURL    string
	apiKey     string
	referer    string
	title      string
	httpClient *http.Client
}

// NewClient creates a new OpenRouter client. The timeout bounds every call;
// requests are never retried because completions are billed per generation.
func NewClient(baseURL, apiKey, referer, title string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		referer: referer,
		title:   title,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// chatCompletionRequest is the wire form of a completion request. Message
// content keeps the shape the frontend sent (string or part array).
type chatCompletionRequest struct {
	Model    string               `json:"model"`
	Messages []domain.ChatMessage `json:"messages"`
}

// chatCompletionResponse covers the slice of the response the relay inspects;
// the full body is passed through to the caller untouched.
type chatCompletionResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// errorResponse is the error envelope OpenRouter returns on non-2xx statuses.
type errorResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Completion is the result of a successful chat completion call.
type Completion struct {
	// Text is the first choice's message content.
	Text string
	// Raw is the unmodified upstream response body.
	Raw json.RawMessage
}

// Model is one entry of the upstream model catalog.
type Model struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContextLength int     `json:"context_length"`
	Pricing       Pricing `json:"pricing"`
}

// Pricing carries the per-token price strings for a model.
type Pricing struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

type modelsResponse struct {
	Data []Model `json:"data"`
}

// CreateChatCompletion sends a single chat completion request. A non-2xx
// status becomes a domain.UpstreamError carrying the upstream's own status
// and message; a 2xx body without choice content becomes a
// domain.MalformedResponseError.
func (c *Client) CreateChatCompletion(ctx context.Context, model string, messages []domain.ChatMessage) (*Completion, error) {
	body, err := json.Marshal(&chatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamErrorMessage(respBody),
		}
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &domain.MalformedResponseError{Detail: err.Error()}
	}
	if len(result.Choices) == 0 {
		return nil, &domain.MalformedResponseError{Detail: "no choices in response"}
	}
	first := result.Choices[0]
	if first.Message == nil || first.Message.Content == nil {
		return nil, &domain.MalformedResponseError{Detail: "choice has no message content"}
	}

	return &Completion{
		Text: *first.Message.Content,
		Raw:  respBody,
	}, nil
}

// ListModels retrieves the upstream model catalog, pricing included.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamErrorMessage(respBody),
		}
	}

	var result modelsResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &domain.MalformedResponseError{Detail: err.Error()}
	}

	return result.Data, nil
}

// upstreamErrorMessage extracts the nested error message from an upstream
// error body, falling back to a generic message.
func upstreamErrorMessage(body []byte) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return "OpenRouter API error"
}

// setHeaders sets common request headers. OpenRouter requires the referer
// and title headers for free-tier models.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		req.Header.Set("X-Title", c.title)
	}
}
