package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a AppView) renderHelpModal() string {
	green := lipgloss.NewStyle().
		Bold(true).
		Foreground(successColor)

	title := green.Render("ChatUI - Keyboard Shortcuts")

	blue := lipgloss.NewStyle().Foreground(accentColor)

	globalActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Global Actions"),
		"• Tab           Switch between sidebar and input",
		"• Alt+N         New chat",
		"• Alt+Y         Copy last reply to clipboard",
		"• Alt+H         Toggle this help",
		"• Ctrl+C        Quit",
	)

	sidebarActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Sidebar (conversation list)"),
		"• j/k or ↑/↓    Navigate",
		"• g / G         Jump to top / bottom",
		"• Enter         Open conversation",
		"• n             New chat",
		"• d             Delete conversation",
		"• /             Filter conversations",
		"• Esc           Clear filter / error",
	)

	chatActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Chat"),
		"• Enter         Send message",
		"• Alt+Enter     Insert newline",
		"• PgUp/PgDn     Scroll thread",
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		globalActions,
		"",
		sidebarActions,
		"",
		chatActions,
		"",
		DimStyle.Render(fmt.Sprintf("ChatUI %s - %s", a.dataModel.Version, a.dataModel.License)),
		DimStyle.Render("Press Esc to close"),
	)

	boxed := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Padding(1, 3).
		Render(content)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, boxed)
}
