package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		expectError bool
		wantBase    string
	}{
		{
			name:     "defaults when empty",
			baseURL:  "",
			wantBase: "http://localhost:8000",
		},
		{
			name:     "trailing slash trimmed",
			baseURL:  "http://chat.example:9000/",
			wantBase: "http://chat.example:9000",
		},
		{
			name:        "rejects non-http scheme",
			baseURL:     "ftp://chat.example",
			expectError: true,
		},
		{
			name:        "rejects unparseable URL",
			baseURL:     "http://chat example\x7f",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.BaseURL() != tt.wantBase {
				t.Errorf("base URL = %q, want %q", client.BaseURL(), tt.wantBase)
			}
		})
	}
}

func TestListConversations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/conversations/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		json.NewEncoder(w).Encode([]Conversation{
			{ID: 1, Title: "First chat", CreatedAt: "2026-08-20T10:00:00"},
			{ID: 2, Title: "Second chat", CreatedAt: "2026-08-21T11:00:00"},
		})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	conversations, err := client.ListConversations(context.Background())
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("got %d conversations, want 2", len(conversations))
	}
	if conversations[0].ID != 1 || conversations[0].Title != "First chat" {
		t.Errorf("unexpected first conversation: %+v", conversations[0])
	}
}

func TestGetConversationNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Conversation not found"})
	}))
	defer srv.Close()

	client, _ := NewClient(srv.URL)
	_, err := client.GetConversation(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false, want true for %v", err)
	}
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Detail != "Conversation not found" {
		t.Errorf("detail = %q, want %q", apiErr.Detail, "Conversation not found")
	}
}

func TestListMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/conversations/7/messages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Message{
			{ID: 10, Role: RoleUser, Content: "hi", ConversationID: 7},
			{ID: 11, Role: RoleAssistant, Content: "hello!", ConversationID: 7},
		})
	}))
	defer srv.Close()

	client, _ := NewClient(srv.URL)
	messages, err := client.ListMessages(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[1].Role != RoleAssistant {
		t.Errorf("second message role = %q, want assistant", messages[1].Role)
	}
}

func TestCreateConversation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/conversations/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var req struct {
			Title string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.Title != "Trip planning" {
			t.Errorf("title = %q, want %q", req.Title, "Trip planning")
		}
		json.NewEncoder(w).Encode(Conversation{ID: 3, Title: req.Title, CreatedAt: "2026-08-23T09:00:00"})
	}))
	defer srv.Close()

	client, _ := NewClient(srv.URL)
	conversation, err := client.CreateConversation(context.Background(), "Trip planning")
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}
	if conversation.ID != 3 {
		t.Errorf("id = %d, want 3", conversation.ID)
	}
}

func TestSendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/conversations/5/messages" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(Message{
			ID: 20, Role: RoleAssistant, Content: "Echo: " + req.Content, ConversationID: 5,
		})
	}))
	defer srv.Close()

	client, _ := NewClient(srv.URL)
	reply, err := client.SendMessage(context.Background(), 5, "what's the weather?")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply.Role != RoleAssistant {
		t.Errorf("reply role = %q, want assistant", reply.Role)
	}
	if reply.Content != "Echo: what's the weather?" {
		t.Errorf("reply content = %q", reply.Content)
	}
}

func TestSendMessageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client, _ := NewClient(srv.URL)
	_, err := client.SendMessage(context.Background(), 1, "hi")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", apiErr.StatusCode)
	}
	if apiErr.Detail != "" {
		t.Errorf("detail = %q, want empty for non-JSON body", apiErr.Detail)
	}
}

func TestDeleteConversation(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/conversations/9" {
			deleted = true
			json.NewEncoder(w).Encode(map[string]bool{"ok": true})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, _ := NewClient(srv.URL)
	if err := client.DeleteConversation(context.Background(), 9); err != nil {
		t.Fatalf("DeleteConversation: %v", err)
	}
	if !deleted {
		t.Error("backend never saw the delete")
	}
}
