package model

import (
	"testing"
	"time"

	"chatui/api"
)

func TestParseBackendTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "naive isoformat with microseconds",
			input: "2026-08-23T14:30:05.123456",
			want:  time.Date(2026, 8, 23, 14, 30, 5, 123456000, time.UTC),
		},
		{
			name:  "naive isoformat without fraction",
			input: "2026-08-23T14:30:05",
			want:  time.Date(2026, 8, 23, 14, 30, 5, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: "2026-08-23T14:30:05Z",
			want:  time.Date(2026, 8, 23, 14, 30, 5, 0, time.UTC),
		},
		{
			name:  "garbage falls back to zero",
			input: "yesterday-ish",
			want:  time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBackendTime(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("ParseBackendTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromAPI(t *testing.T) {
	msg := FromAPI(api.Message{
		ID:             1,
		Role:           api.RoleAssistant,
		Content:        "# Hello",
		ConversationID: 2,
		CreatedAt:      "2026-08-23T10:00:00",
	})

	if msg.Role != api.RoleAssistant {
		t.Errorf("role = %q", msg.Role)
	}
	if msg.Content != "# Hello" {
		t.Errorf("content = %q", msg.Content)
	}
	if msg.Rendered != msg.Content {
		t.Error("rendered should start as the raw content")
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp should have parsed")
	}
}
