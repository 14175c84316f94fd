package model

import "chatui/api"

type ConversationsListMsg struct {
	Conversations []api.Conversation
	Err           error
}

type ConversationOpenedMsg struct {
	Conversation *api.Conversation
	Messages     []api.Message
	Err          error
}

// ChatCompletedMsg reports the outcome of a send. NewConversation is set
// when the send created the conversation lazily. Input carries the
// original text so a failed send can restore it.
type ChatCompletedMsg struct {
	NewConversation *api.Conversation
	Reply           *api.Message
	Input           string
	Err             error
}

type ConversationDeletedMsg struct {
	ID  int
	Err error
}

// MarkdownRenderedMsg carries an async render result. Generation identifies
// the thread the render was started for; results from a replaced thread are
// dropped instead of landing at the same index in the new one.
type MarkdownRenderedMsg struct {
	Generation   int
	MessageIndex int
	Rendered     string
}
