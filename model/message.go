package model

import (
	"time"

	"chatui/api"
)

// Message represents a chat message in the thread view
type Message struct {
	Role      string
	Content   string // Raw content from the backend
	Rendered  string // Cached rendered markdown
	Timestamp time.Time
}

// backend timestamp layouts, most common first. FastAPI emits naive
// isoformat strings with optional fractional seconds.
var backendTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseBackendTime converts a backend created_at string into a time.Time.
// Unparseable values fall back to the zero time rather than failing the
// whole fetch - timestamps are display-only.
func ParseBackendTime(s string) time.Time {
	for _, layout := range backendTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FromAPI converts a backend message into its view representation.
// Rendered starts as the raw content; markdown rendering happens async.
func FromAPI(msg api.Message) Message {
	return Message{
		Role:      msg.Role,
		Content:   msg.Content,
		Rendered:  msg.Content,
		Timestamp: ParseBackendTime(msg.CreatedAt),
	}
}
