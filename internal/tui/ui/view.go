package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todolist-tui/internal/tui/components"
	"github.com/hy4ri/todolist-tui/internal/tui/state"
	"github.com/hy4ri/todolist-tui/internal/tui/styles"
)

const appTitle = "TODO-LIST"

// Renderer embeds the shared state and renders it.
type Renderer struct {
	*state.State

	help    *components.HelpModel
	confirm *components.ConfirmModel
}

// NewRenderer creates a renderer over s.
func NewRenderer(s *state.State) *Renderer {
	return &Renderer{
		State:   s,
		help:    components.NewHelp(),
		confirm: components.NewConfirm(deletePrompt, s.Keymap.Confirm.Key, s.Keymap.Decline.Key),
	}
}

// View renders the whole screen.
func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	contentWidth := r.Width - styles.App.GetHorizontalFrameSize()

	header := styles.Header.Width(contentWidth).Render(appTitle)
	status := r.renderStatusBar(contentWidth)

	var body string
	switch {
	case r.ConfirmDelete:
		body = r.renderDeleteDialog(contentWidth)
	case r.ShowHelp:
		body = r.renderHelp(contentWidth)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			r.renderForm(contentWidth),
			r.renderFeedback(contentWidth),
			r.renderList(contentWidth),
		)
	}

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		status,
	))
}

// renderFeedback renders the success and error banners, if any.
func (r *Renderer) renderFeedback(width int) string {
	var lines []string
	if r.Feedback.Message != "" {
		lines = append(lines, styles.SuccessText.Render(truncateString(r.Feedback.Message, width)))
	}
	if r.Feedback.Err != "" {
		lines = append(lines, styles.ErrorText.Render(truncateString(r.Feedback.Err, width)))
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
