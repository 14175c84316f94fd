package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chatui/api"
	"chatui/config"
	"chatui/model"
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)

	case spinner.TickMsg:
		if !a.dataModel.Loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		a.updateViewportContent(true)
		return a, cmd

	case conversationsListMsg:
		return a.handleConversationsList(msg)

	case conversationOpenedMsg:
		return a.handleConversationOpened(msg)

	case chatCompletedMsg:
		return a.handleChatCompleted(msg)

	case conversationDeletedMsg:
		return a.handleConversationDeleted(msg)

	case markdownRenderedMsg:
		if msg.Generation == a.threadGen && msg.MessageIndex >= 0 && msg.MessageIndex < len(a.dataModel.Messages) {
			a.dataModel.Messages[msg.MessageIndex].Rendered = msg.Rendered
			a.updateViewportContent(a.viewport.AtBottom())
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.updateComponents(msg)
}

func (a AppView) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height

	a.textarea.SetWidth(msg.Width - 2)
	a.viewport.Width = a.chatWidth()
	a.viewport.Height = a.paneHeight()
	a.ready = true

	a.updateViewportContent(true)

	// Markdown is width-sensitive; re-render the thread at the new width
	return a, a.renderAllMarkdown()
}

func (a AppView) handleConversationsList(msg conversationsListMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.errorText = msg.Err.Error()
		return a, nil
	}

	a.dataModel.Conversations = msg.Conversations
	if a.selectedIdx >= len(msg.Conversations) {
		a.selectedIdx = 0
	}
	if a.filterMode {
		a.applyConversationFilter()
	}
	return a, nil
}

func (a AppView) handleConversationOpened(msg conversationOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Selection stays where it was; the failure is just reported
		a.errorText = msg.Err.Error()
		return a, nil
	}

	a.errorText = ""
	a.dataModel.CurrentConversation = msg.Conversation
	a.threadGen++

	// Replace the thread with exactly the backend's sequence
	messages := make([]Message, 0, len(msg.Messages))
	for _, apiMsg := range msg.Messages {
		messages = append(messages, model.FromAPI(apiMsg))
	}
	a.dataModel.Messages = messages

	a.focus = focusInput
	a.textarea.Focus()
	a.updateViewportContent(true)
	return a, a.renderAllMarkdown()
}

func (a AppView) handleChatCompleted(msg chatCompletedMsg) (tea.Model, tea.Cmd) {
	a.dataModel.Loading = false
	a.removeLoadingRow()

	if msg.Err != nil {
		// Roll back the optimistic user message and restore the input so
		// the user can retry. An existing selection is left unchanged.
		a.rollbackOptimisticMessage(msg.Input)
		a.textarea.SetValue(msg.Input)
		a.errorText = msg.Err.Error()
		a.updateViewportContent(true)

		// The conversation may have been created before the send failed.
		// It becomes current so a retry posts into it instead of creating
		// a second one, and the sidebar learns about it.
		if msg.NewConversation != nil {
			a.dataModel.CurrentConversation = msg.NewConversation
			return a, a.dataModel.FetchConversations()
		}
		return a, nil
	}

	a.errorText = ""
	var cmds []tea.Cmd

	if msg.NewConversation != nil {
		a.dataModel.CurrentConversation = msg.NewConversation
		cmds = append(cmds, a.dataModel.FetchConversations())
	}

	if msg.Reply != nil {
		reply := model.FromAPI(*msg.Reply)
		if reply.Timestamp.IsZero() {
			reply.Timestamp = time.Now()
		}
		a.dataModel.Messages = append(a.dataModel.Messages, reply)
		cmds = append(cmds, a.renderMarkdownAsync(len(a.dataModel.Messages)-1, reply.Content))
	}

	a.updateViewportContent(true)
	return a, tea.Batch(cmds...)
}

func (a AppView) handleConversationDeleted(msg conversationDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.errorText = msg.Err.Error()
		return a, nil
	}

	if a.dataModel.CurrentConversation != nil && a.dataModel.CurrentConversation.ID == msg.ID {
		a.dataModel.ResetThread()
		a.threadGen++
		a.updateViewportContent(false)
	}
	if a.selectedIdx > 0 {
		a.selectedIdx--
	}
	return a, a.dataModel.FetchConversations()
}

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Delete confirmation intercepts everything
	if a.confirmDelete != nil {
		switch msg.String() {
		case "y":
			conversation := a.confirmDelete
			a.confirmDelete = nil
			return a, a.dataModel.DeleteConversation(conversation.ID)
		case "n", "esc":
			a.confirmDelete = nil
			return a, nil
		}
		return a, nil
	}

	if a.showHelp {
		switch msg.String() {
		case "esc", "alt+h", "q":
			a.showHelp = false
		}
		return a, nil
	}

	// Global bindings
	switch msg.String() {
	case "ctrl+c", "alt+q":
		return a, tea.Quit

	case "alt+h":
		a.showHelp = true
		return a, nil

	case "alt+n":
		a.startNewChat()
		return a, nil

	case "alt+y":
		if content := a.dataModel.LatestAssistantContent(); content != "" {
			clipboard.WriteAll(content)
		}
		return a, nil

	case "tab":
		if a.focus == focusInput {
			a.focus = focusSidebar
			a.textarea.Blur()
		} else {
			a.focus = focusInput
			a.filterMode = false
			a.filterInput.Blur()
			a.textarea.Focus()
		}
		return a, nil
	}

	if a.focus == focusSidebar {
		return a.handleSidebarKey(msg)
	}
	return a.handleInputKey(msg)
}

func (a AppView) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.filterMode {
		switch msg.String() {
		case "esc":
			a.filterMode = false
			a.filterInput.Reset()
			a.filterInput.Blur()
			a.filteredList = []api.Conversation{}
			a.selectedIdx = 0
			return a, nil
		case "enter":
			return a.openSelected()
		case "up":
			if a.selectedIdx > 0 {
				a.selectedIdx--
			}
			return a, nil
		case "down":
			if a.selectedIdx < len(a.getConversationList())-1 {
				a.selectedIdx++
			}
			return a, nil
		}

		var cmd tea.Cmd
		a.filterInput, cmd = a.filterInput.Update(msg)
		a.applyConversationFilter()
		return a, cmd
	}

	switch msg.String() {
	case "j", "down":
		if a.selectedIdx < len(a.getConversationList())-1 {
			a.selectedIdx++
		}
	case "k", "up":
		if a.selectedIdx > 0 {
			a.selectedIdx--
		}
	case "g":
		a.selectedIdx = 0
	case "G":
		if n := len(a.getConversationList()); n > 0 {
			a.selectedIdx = n - 1
		}
	case "enter":
		return a.openSelected()
	case "n":
		a.startNewChat()
	case "d":
		a.confirmDelete = a.selectedConversation()
	case "/":
		a.filterMode = true
		a.filterInput.Reset()
		a.filterInput.Focus()
	case "esc":
		a.errorText = ""
	}
	return a, nil
}

func (a AppView) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Enter sends; Alt+Enter inserts a newline via the textarea keymap
	if msg.Type == tea.KeyEnter && !msg.Alt && !a.dataModel.Loading {
		return a.handleSend()
	}

	switch msg.String() {
	case "esc":
		a.errorText = ""
		return a, nil
	case "pgup", "pgdown":
		// Thread scrolling stays available while typing
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	return a, cmd
}

func (a AppView) handleSend() (tea.Model, tea.Cmd) {
	input := a.textarea.Value()

	// Blank input never reaches the network
	if strings.TrimSpace(input) == "" {
		return a, nil
	}

	a.errorText = ""
	a.textarea.Reset()

	if config.DebugLog != nil {
		config.DebugLog.Printf("Enter pressed - sending message (%d chars)", len(input))
	}

	// Optimistic insert: the user turn appears before the round-trip.
	// User messages render as plain text, so Rendered is final here.
	a.dataModel.Messages = append(a.dataModel.Messages, Message{
		Role:      api.RoleUser,
		Content:   input,
		Rendered:  input,
		Timestamp: time.Now(),
	})

	a.loadingSpinner = spinner.New()
	a.loadingSpinner.Spinner = spinner.Dot
	a.loadingSpinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	a.dataModel.Messages = append(a.dataModel.Messages, Message{
		Role:      "system",
		Content:   loadingMessage,
		Rendered:  loadingMessage,
		Timestamp: time.Now(),
	})

	a.dataModel.Loading = true
	a.updateViewportContent(true)

	return a, tea.Batch(
		a.dataModel.SendChat(input),
		a.loadingSpinner.Tick,
	)
}

func (a AppView) openSelected() (tea.Model, tea.Cmd) {
	conversation := a.selectedConversation()
	if conversation == nil {
		return a, nil
	}

	a.filterMode = false
	a.filterInput.Reset()
	a.filterInput.Blur()
	a.filteredList = []api.Conversation{}

	// Fix the selection on the full list so it survives the filter reset
	for i, c := range a.dataModel.Conversations {
		if c.ID == conversation.ID {
			a.selectedIdx = i
			break
		}
	}

	return a, a.dataModel.OpenConversation(conversation.ID)
}

// removeLoadingRow drops the trailing in-flight placeholder, if present
func (a *AppView) removeLoadingRow() {
	messages := a.dataModel.Messages
	if n := len(messages); n > 0 && messages[n-1].Role == "system" && messages[n-1].Content == loadingMessage {
		a.dataModel.Messages = messages[:n-1]
	}
}

// rollbackOptimisticMessage removes the trailing user message matching the
// failed send's input.
func (a *AppView) rollbackOptimisticMessage(input string) {
	messages := a.dataModel.Messages
	if n := len(messages); n > 0 && messages[n-1].Role == api.RoleUser && messages[n-1].Content == input {
		a.dataModel.Messages = messages[:n-1]
	}
}

// updateComponents forwards non-key messages (blink ticks, mouse wheel)
// to the focused components.
func (a AppView) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	a.textarea, cmd = a.textarea.Update(msg)
	cmds = append(cmds, cmd)

	a.viewport, cmd = a.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}
