package model

import (
	"chatui/api"
	"chatui/config"
)

// Model holds the core application data and business logic state
type Model struct {
	// Core dependencies
	Config *config.Config
	Client *api.Client

	// Application data
	Conversations       []api.Conversation
	Messages            []Message
	CurrentConversation *api.Conversation

	// Runtime state (not UI)
	Loading bool

	// Application metadata
	Version string
	License string
}

// NewModel creates a new Model with the given configuration
func NewModel(cfg *config.Config, client *api.Client, version, license string) *Model {
	return &Model{
		Config:  cfg,
		Client:  client,
		Loading: false,
		Version: version,
		License: license,
	}
}

// CurrentConversationID returns the selected conversation's id, or 0 when
// no conversation is selected.
func (m *Model) CurrentConversationID() int {
	if m.CurrentConversation == nil {
		return 0
	}
	return m.CurrentConversation.ID
}

// ResetThread clears the thread and selection for a new chat. The backend
// conversation is created lazily on first send.
func (m *Model) ResetThread() {
	m.CurrentConversation = nil
	m.Messages = nil
}

// LatestAssistantContent returns the raw content of the most recent
// assistant message, or "" if there is none.
func (m *Model) LatestAssistantContent() string {
	for i := len(m.Messages) - 1; i >= 0; i-- {
		if m.Messages[i].Role == api.RoleAssistant {
			return m.Messages[i].Content
		}
	}
	return ""
}
