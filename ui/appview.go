package ui

import (
	"fmt"
	"net/url"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chatui/api"
	"chatui/config"
	appmodel "chatui/model"
)

// focusArea tracks which pane receives key input
type focusArea int

const (
	focusInput focusArea = iota
	focusSidebar
)

const sidebarWidth = 32

type AppView struct {
	// Reference to core data model
	dataModel *appmodel.Model

	// UI Components
	viewport viewport.Model
	textarea textarea.Model

	// Window state
	width  int
	height int
	ready  bool

	// Pane focus
	focus focusArea

	// Sidebar state
	selectedIdx   int
	filterMode    bool
	filterInput   textinput.Model
	filteredList  []api.Conversation
	confirmDelete *api.Conversation

	// Thread generation, bumped whenever the thread is replaced or
	// cleared. Async markdown results from an older generation are stale.
	threadGen int

	// Loading spinner (bubbles/spinner)
	loadingSpinner spinner.Model

	// User-visible error from the last failed operation, cleared on the
	// next successful one (or Esc)
	errorText string

	showHelp bool
}

func NewAppView(cfg *config.Config, client *api.Client, version, license string) AppView {
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.Focus()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(80)

	// Custom KeyMap: Alt+Enter for newline, Enter alone sends (handled separately)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	// Dynamic prompt: "> " for first line, "| " for subsequent lines
	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "| "
	})

	vp := viewport.New(0, 0)

	filterInput := textinput.New()
	filterInput.Prompt = "Filter: "
	filterInput.CharLimit = 64

	dataModel := appmodel.NewModel(cfg, client, version, license)

	return AppView{
		dataModel:    dataModel,
		textarea:     ta,
		viewport:     vp,
		ready:        false,
		focus:        focusInput,
		filterInput:  filterInput,
		filteredList: []api.Conversation{},
	}
}

func (a AppView) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		a.dataModel.FetchConversations(),
	)
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading ChatUI..."
	}

	// Modal layers, top to bottom: delete confirmation, help
	if a.confirmDelete != nil {
		warningText := lipgloss.NewStyle().Foreground(dangerColor).Render("This action cannot be undone.")
		return RenderConfirmationModal(ConfirmationState{
			Active:  true,
			Title:   "⚠ Delete Conversation",
			Message: fmt.Sprintf("Are you sure you want to delete:\n\n\"%s\"\n\n%s", a.confirmDelete.Title, warningText),
		}, a.width, a.height)
	}

	if a.showHelp {
		return a.renderHelpModal()
	}

	// Title bar - "ChatUI - backend host - conversation title"
	appText := AssistantStyle.Render("ChatUI")
	backendText := TitleStyle.Render(fmt.Sprintf(" - %s", a.backendHost()))
	conversationTitle := "New Chat"
	if a.dataModel.CurrentConversation != nil && a.dataModel.CurrentConversation.Title != "" {
		conversationTitle = a.dataModel.CurrentConversation.Title
	}
	title := appText + backendText + UserStyle.Render(fmt.Sprintf(" - %s", conversationTitle))

	// Two panes: conversation sidebar on the left, thread on the right
	sidebar := a.renderSidebar()
	panes := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, a.viewport.View())

	// Error banner between the thread and the input
	banner := ""
	if a.errorText != "" {
		banner = ErrorStyle.Render("Error: " + a.errorText)
	}

	inputView := a.textarea.View()

	descStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	statusBar := fmt.Sprintf("Ctrl+C %s  Tab %s  Alt+N %s  Alt+Y %s  Alt+Enter %s  Enter %s  Alt+H %s",
		descStyle.Render("Quit"),
		descStyle.Render("Switch Pane"),
		descStyle.Render("New Chat"),
		descStyle.Render("Copy Reply"),
		descStyle.Render("New Line"),
		descStyle.Render("Send"),
		descStyle.Render("Help"),
	)
	statusBar = StatusStyle.Render(statusBar)

	sections := []string{title, "", panes}
	if banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, inputView, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// backendHost renders just the host of the backend URL for the title bar
func (a AppView) backendHost() string {
	parsed, err := url.Parse(a.dataModel.Client.BaseURL())
	if err != nil || parsed.Host == "" {
		return a.dataModel.Client.BaseURL()
	}
	return parsed.Host
}

// chatWidth is the width available to the thread viewport
func (a AppView) chatWidth() int {
	w := a.width - sidebarWidth - 2
	if w < 20 {
		w = 20
	}
	return w
}

// paneHeight is the height available to the sidebar and thread panes
func (a AppView) paneHeight() int {
	// Title + spacer above, textarea + status bar below
	h := a.height - 2 - a.textarea.Height() - 1
	if a.errorText != "" {
		h--
	}
	if h < 5 {
		h = 5
	}
	return h
}

func (a AppView) getConversationList() []api.Conversation {
	if a.filterMode && len(a.filteredList) > 0 {
		return a.filteredList
	}
	if a.filterMode && a.filterInput.Value() != "" {
		// Filter active but nothing matches
		return nil
	}
	return a.dataModel.Conversations
}

// selectedConversation returns the sidebar's highlighted conversation
func (a AppView) selectedConversation() *api.Conversation {
	list := a.getConversationList()
	if len(list) == 0 || a.selectedIdx < 0 || a.selectedIdx >= len(list) {
		return nil
	}
	return &list[a.selectedIdx]
}

// startNewChat clears thread, input and selection. The backend
// conversation is created lazily on the first send.
func (a *AppView) startNewChat() {
	a.dataModel.ResetThread()
	a.threadGen++
	a.textarea.Reset()
	a.errorText = ""
	a.focus = focusInput
	a.textarea.Focus()
	a.updateViewportContent(false)
}
