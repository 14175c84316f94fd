package ui

import (
	"chatui/model"
)

// Message type alias - the view renders the model package's messages
type Message = model.Message

// Msg aliases - results of backend commands, defined in the model package
type conversationsListMsg = model.ConversationsListMsg
type conversationOpenedMsg = model.ConversationOpenedMsg
type chatCompletedMsg = model.ChatCompletedMsg
type conversationDeletedMsg = model.ConversationDeletedMsg
type markdownRenderedMsg = model.MarkdownRenderedMsg
