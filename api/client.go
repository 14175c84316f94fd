package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Error is a failed backend response. The backend reports failures as
// JSON bodies of the form {"detail": "..."} with a non-2xx status.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to the chat backend. It is stateless beyond the base URL
// and safe for use from tea.Cmd closures.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend URL %q: scheme must be http or https", baseURL)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListConversations returns all conversations in backend order.
func (c *Client) ListConversations(ctx context.Context) ([]Conversation, error) {
	var conversations []Conversation
	if err := c.do(ctx, http.MethodGet, "/conversations/", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// GetConversation fetches a single conversation. A missing id comes back
// as a 404 *Error (detail "Conversation not found").
func (c *Client) GetConversation(ctx context.Context, id int) (*Conversation, error) {
	var conversation Conversation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/conversations/%d", id), nil, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ListMessages returns the full message history for a conversation in
// backend order.
func (c *Client) ListMessages(ctx context.Context, conversationID int) ([]Message, error) {
	var messages []Message
	path := fmt.Sprintf("/conversations/%d/messages", conversationID)
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateConversation creates a conversation with the given title and
// returns it with its backend-assigned id.
func (c *Client) CreateConversation(ctx context.Context, title string) (*Conversation, error) {
	var conversation Conversation
	if err := c.do(ctx, http.MethodPost, "/conversations/", createConversationRequest{Title: title}, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// SendMessage posts user content to a conversation. The backend stores
// the user message itself and returns the assistant's reply.
func (c *Client) SendMessage(ctx context.Context, conversationID int, content string) (*Message, error) {
	var reply Message
	path := fmt.Sprintf("/conversations/%d/messages", conversationID)
	if err := c.do(ctx, http.MethodPost, path, sendMessageRequest{Content: content}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// DeleteConversation removes a conversation and its messages.
func (c *Client) DeleteConversation(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/conversations/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	// Body may not be JSON (proxies, panics); keep the status either way.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}
