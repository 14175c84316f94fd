package ui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"chatui/api"
	"chatui/config"
)

// loadingMessage is the placeholder system row shown while a send is in
// flight. It is removed when the reply (or an error) arrives.
const loadingMessage = "Waiting for response..."

// Pre-compiled regex patterns for better performance
var (
	inlineCodeRegex = regexp.MustCompile(`(?s)\x1b\[44;3m(.*?)\x1b\[0m`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
	urlRegex        = regexp.MustCompile(`(https?://[^\s]+)`)
	ansiRegex       = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

func (a *AppView) updateViewportContent(gotoBottom bool) {
	if len(a.dataModel.Messages) == 0 {
		a.viewport.SetContent("No messages yet. Start chatting!")
		return
	}

	var content strings.Builder

	for _, msg := range a.dataModel.Messages {
		timestamp := DimStyle.Render(msg.Timestamp.Format("[15:04]"))

		var roleStyle = DimStyle
		var roleName string
		switch msg.Role {
		case api.RoleUser:
			roleStyle = UserStyle
			roleName = "You"
		case api.RoleAssistant:
			roleStyle = AssistantStyle
			roleName = "Assistant"
		default:
			roleStyle = DimStyle
			roleName = "System"
		}

		role := roleStyle.Render(roleName)

		renderedContent := msg.Rendered

		// The in-flight placeholder gets the spinner prepended
		if msg.Role == "system" && msg.Content == loadingMessage {
			renderedContent = fmt.Sprintf("%s %s", a.loadingSpinner.View(), msg.Content)
		}

		// User messages with vertical bar framing
		if msg.Role == api.RoleUser {
			content.WriteString(formatUserMessage(timestamp, role, renderedContent))
			continue
		}

		// Default formatting for assistant and system messages
		content.WriteString(fmt.Sprintf("%s %s\n%s\n\n", timestamp, role, renderedContent))
	}

	a.viewport.SetContent(content.String())
	if gotoBottom {
		a.viewport.GotoBottom()
	}
}

func formatUserMessage(timestamp, role, content string) string {
	greenBold := "\x1b[32;1m"
	reset := "\x1b[0m"
	bar := greenBold + "┃" + reset

	lines := strings.Split(content, "\n")

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s %s\n", bar, timestamp, role))

	for _, line := range lines {
		result.WriteString(fmt.Sprintf("%s %s\n", bar, line))
	}

	result.WriteString("\n")

	return result.String()
}

// renderMarkdownAsync renders a message's markdown off the Update loop and
// delivers the result as a markdownRenderedMsg.
func (a AppView) renderMarkdownAsync(messageIndex int, content string) tea.Cmd {
	width := a.chatWidth()
	gen := a.threadGen
	return func() tea.Msg {
		if config.DebugLog != nil {
			config.DebugLog.Printf("Rendering markdown for message %d - length: %d chars", messageIndex, len(content))
		}
		startTime := time.Now()

		// Strip markdown link syntax [text](url) → url so links appear
		// as plain colored URLs the terminal can make clickable
		content = preprocessLinks(content)

		// Render with go-term-markdown. Autolink is disabled to keep
		// plain URLs as plain text for the same reason.
		defaultExt := markdown.Extensions()
		customExt := defaultExt &^ parser.Autolink
		p := parser.NewWithExtensions(customExt)
		r := markdown.NewRenderer(width-4, 0)
		doc := p.Parse([]byte(content))
		rendered := gomarkdown.Render(doc, r)

		processed := postProcessMarkdown(string(rendered), width)

		if config.DebugLog != nil {
			config.DebugLog.Printf("Markdown rendered in %v", time.Since(startTime))
		}

		return markdownRenderedMsg{
			Generation:   gen,
			MessageIndex: messageIndex,
			Rendered:     processed,
		}
	}
}

// renderAllMarkdown re-renders every assistant and system message, used
// after a conversation load or a window resize. User messages stay plain
// text and never enter the markdown pipeline.
func (a AppView) renderAllMarkdown() tea.Cmd {
	var cmds []tea.Cmd
	for i, msg := range a.dataModel.Messages {
		if msg.Role == api.RoleUser {
			continue
		}
		cmds = append(cmds, a.renderMarkdownAsync(i, msg.Content))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func postProcessMarkdown(rendered string, width int) string {
	// 1. Fix inline code: Blue background → Red text
	rendered = fixInlineCode(rendered)

	// 2. Color plain URLs red (autolink disabled keeps URLs plain)
	rendered = fixMarkdownLinks(rendered)

	// 3. Frame code blocks with horizontal lines
	rendered = frameCodeBlocks(rendered, width)

	return rendered
}

func preprocessLinks(content string) string {
	return mdLinkRegex.ReplaceAllString(content, "$2")
}

func fixInlineCode(s string) string {
	// Replace: \x1b[44;3m...text...\x1b[0m (Blue BG + Italic)
	// With:    \x1b[31m...text...\x1b[0m (Red text)
	return inlineCodeRegex.ReplaceAllString(s, "\x1b[31m$1\x1b[0m")
}

func fixMarkdownLinks(s string) string {
	redColor := "\x1b[31m"
	reset := "\x1b[0m"

	lines := strings.Split(s, "\n")

	for i, line := range lines {
		// Skip code blocks (they carry the ┃ prefix from rendering)
		if !strings.Contains(line, "┃") {
			lines[i] = urlRegex.ReplaceAllString(line, redColor+"$1"+reset)
		}
	}

	return strings.Join(lines, "\n")
}

func frameCodeBlocks(s string, width int) string {
	lines := strings.Split(s, "\n")
	var result []string
	var codeBlockLines []string
	inCodeBlock := false

	darkGray := "\x1b[90m"
	reset := "\x1b[0m"

	closeBlock := func() {
		result = append(result, codeBlockLines...)
		result = append(result, "")
		border := darkGray + strings.Repeat("━", width-4) + reset
		result = append(result, border)
		result = append(result, "")
		codeBlockLines = nil
		inCodeBlock = false
	}

	for _, line := range lines {
		if strings.Contains(line, "┃") {
			if !inCodeBlock {
				// Start of code block: margin, top border with [code]
				// label centered, inner padding
				inCodeBlock = true
				codeBlockLines = []string{}
				result = append(result, "")

				label := "[code]"
				lineLen := width - 4
				leftLen := (lineLen - len(label)) / 2
				rightLen := lineLen - len(label) - leftLen
				border := darkGray + strings.Repeat("━", leftLen) + reset + label + darkGray + strings.Repeat("━", rightLen) + reset

				result = append(result, border)
				result = append(result, "")
			}

			codeBlockLines = append(codeBlockLines, stripCodeBlockPrefix(line))
		} else {
			if inCodeBlock {
				closeBlock()
			}
			result = append(result, line)
		}
	}

	if inCodeBlock && len(codeBlockLines) > 0 {
		closeBlock()
	}

	return strings.Join(result, "\n")
}

func stripCodeBlockPrefix(line string) string {
	idx := strings.Index(line, "┃")
	if idx >= 0 {
		after := idx + len("┃")
		if after < len(line) && line[after] == ' ' {
			after++
		}
		if after < len(line) {
			return line[after:]
		}
		return ""
	}
	return line
}

// stripANSI removes ANSI escape codes for accurate length calculation
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
