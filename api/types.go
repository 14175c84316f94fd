package api

// Role values used by the backend.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation is a named thread grouping an ordered sequence of messages.
// It is created and owned by the backend; the client never mutates one
// locally.
type Conversation struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

// Message is a single turn in a conversation, attributed to either the
// user or the assistant. Timestamps are passed through as the backend
// formats them.
type Message struct {
	ID             int    `json:"id"`
	Role           string `json:"role"`
	Content        string `json:"content"`
	ConversationID int    `json:"conversation_id"`
	CreatedAt      string `json:"created_at"`
}

type createConversationRequest struct {
	Title string `json:"title"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}
