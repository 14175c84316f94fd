package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"chatui/api"
	"chatui/config"
)

// FetchConversations retrieves the conversation list for the sidebar
func (m *Model) FetchConversations() tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		conversations, err := client.ListConversations(context.Background())
		return ConversationsListMsg{
			Conversations: conversations,
			Err:           err,
		}
	}
}

// OpenConversation fetches a conversation and its full message history.
// The conversation fetch runs first so a stale sidebar entry surfaces as
// "Conversation not found" instead of an empty thread.
func (m *Model) OpenConversation(conversationID int) tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		conversation, err := client.GetConversation(context.Background(), conversationID)
		if err != nil {
			return ConversationOpenedMsg{Err: err}
		}

		messages, err := client.ListMessages(context.Background(), conversationID)
		if err != nil {
			return ConversationOpenedMsg{Err: err}
		}

		return ConversationOpenedMsg{
			Conversation: conversation,
			Messages:     messages,
		}
	}
}

// SendChat posts user input to the backend and returns the assistant
// reply. When no conversation is selected the conversation is created
// first, titled from the input. The calls run sequentially inside one
// command - there is never more than one outstanding request.
func (m *Model) SendChat(input string) tea.Cmd {
	client := m.Client
	conversation := m.CurrentConversation

	return func() tea.Msg {
		ctx := context.Background()

		var created *api.Conversation
		target := conversation
		if target == nil {
			var err error
			created, err = client.CreateConversation(ctx, DeriveTitle(input))
			if err != nil {
				return ChatCompletedMsg{Input: input, Err: fmt.Errorf("failed to create conversation: %w", err)}
			}
			target = created
		}

		reply, err := client.SendMessage(ctx, target.ID, input)
		if err != nil {
			return ChatCompletedMsg{NewConversation: created, Input: input, Err: err}
		}

		if config.DebugLog != nil {
			config.DebugLog.Printf("[Model] Send complete: conversation=%d reply=%d", target.ID, reply.ID)
		}

		return ChatCompletedMsg{
			NewConversation: created,
			Reply:           reply,
			Input:           input,
		}
	}
}

// DeleteConversation removes a conversation on the backend
func (m *Model) DeleteConversation(conversationID int) tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		err := client.DeleteConversation(context.Background(), conversationID)
		return ConversationDeletedMsg{ID: conversationID, Err: err}
	}
}

// DeriveTitle builds a conversation title from the first message
func DeriveTitle(firstMessage string) string {
	name := strings.ReplaceAll(firstMessage, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.TrimSpace(name)

	// Truncate on runes so a multibyte character is never split
	if runes := []rune(name); len(runes) > 30 {
		name = string(runes[:30]) + "..."
	}

	if name == "" {
		return fmt.Sprintf("Chat %s", time.Now().Format("Jan 2, 3:04 PM"))
	}

	return name
}
