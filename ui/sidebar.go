package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"chatui/api"
	"chatui/model"
)

// renderSidebar draws the conversation list pane
func (a AppView) renderSidebar() string {
	height := a.paneHeight()
	innerWidth := sidebarWidth - 2

	var lines []string

	// Header: filter input or count
	var header string
	if a.filterMode {
		header = a.filterInput.View()
	} else {
		count := len(a.dataModel.Conversations)
		if count == 1 {
			header = "1 conversation"
		} else {
			header = fmt.Sprintf("%d conversations", count)
		}
	}
	lines = append(lines, TitleStyle.Render("Conversations"))
	lines = append(lines, DimStyle.Render(truncateLine(header, innerWidth)))
	lines = append(lines, DimStyle.Render(strings.Repeat("─", innerWidth)))

	list := a.getConversationList()
	maxLines := height - len(lines)

	if len(list) == 0 {
		emptyMsg := "No conversations yet"
		if a.filterMode {
			emptyMsg = "No matches found"
		}
		lines = append(lines, DimStyle.Italic(true).Render(truncateLine(emptyMsg, innerWidth)))
	} else {
		startIdx, endIdx := scrollWindow(len(list), a.selectedIdx, maxLines)
		for i := startIdx; i < endIdx; i++ {
			lines = append(lines, a.renderSidebarLine(list[i], i, innerWidth))
		}
	}

	pane := lipgloss.NewStyle().Width(innerWidth).Height(height).Render(strings.Join(lines, "\n"))

	if a.focus == focusSidebar {
		return SidebarFocusedStyle.Render(pane)
	}
	return SidebarStyle.Render(pane)
}

func (a AppView) renderSidebarLine(conversation api.Conversation, idx, innerWidth int) string {
	indicator := "  "
	if idx == a.selectedIdx {
		indicator = "▶ "
	}

	timeAgo := formatTimeAgo(model.ParseBackendTime(conversation.CreatedAt))

	// indicator + title + two spaces + time column
	maxTitleWidth := innerWidth - len(indicator) - len(timeAgo) - 2
	if maxTitleWidth < 4 {
		maxTitleWidth = 4
	}
	title := truncateLine(conversation.Title, maxTitleWidth)

	spacing := innerWidth - len(indicator) - runewidth.StringWidth(title) - len(timeAgo)
	if spacing < 1 {
		spacing = 1
	}

	line := indicator + title + strings.Repeat(" ", spacing) + timeAgo

	isCurrent := a.dataModel.CurrentConversation != nil &&
		a.dataModel.CurrentConversation.ID == conversation.ID

	if idx == a.selectedIdx {
		return SelectedStyle.Render(line)
	}
	if isCurrent {
		return lipgloss.NewStyle().Foreground(accentColor).Bold(true).Render(line)
	}
	return line
}

// applyConversationFilter fuzzy-matches the filter input against titles
func (a *AppView) applyConversationFilter() {
	filterValue := a.filterInput.Value()
	if filterValue == "" {
		a.filteredList = []api.Conversation{}
		return
	}

	targets := make([]string, len(a.dataModel.Conversations))
	for i, conversation := range a.dataModel.Conversations {
		targets[i] = conversation.Title
	}

	matches := fuzzy.Find(filterValue, targets)
	filtered := make([]api.Conversation, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, a.dataModel.Conversations[match.Index])
	}
	a.filteredList = filtered

	if a.selectedIdx >= len(filtered) {
		a.selectedIdx = 0
	}
}

// scrollWindow returns the [start, end) slice of a list of length total
// that keeps selected visible within max lines.
func scrollWindow(total, selected, max int) (int, int) {
	if max <= 0 {
		return 0, 0
	}
	if total <= max {
		return 0, total
	}

	start := 0
	if selected >= total-max/2 {
		start = total - max
	} else if selected >= max/2 {
		start = selected - max/2
	}

	end := start + max
	if end > total {
		end = total
	}
	return start, end
}

// truncateLine cuts a string to a display width, appending "..." when cut
func truncateLine(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// formatTimeAgo formats a time as a relative string (e.g., "2h ago", "3d ago")
func formatTimeAgo(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	duration := time.Since(t)

	if duration < time.Minute {
		return "just now"
	} else if duration < time.Hour {
		mins := int(duration.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	} else if duration < 24*time.Hour {
		hours := int(duration.Hours())
		return fmt.Sprintf("%dh ago", hours)
	} else if duration < 7*24*time.Hour {
		days := int(duration.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	} else if duration < 30*24*time.Hour {
		weeks := int(duration.Hours() / 24 / 7)
		return fmt.Sprintf("%dw ago", weeks)
	} else {
		months := int(duration.Hours() / 24 / 30)
		return fmt.Sprintf("%dmo ago", months)
	}
}
