package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todolist-tui/internal/tui/state"
	"github.com/hy4ri/todolist-tui/internal/tui/styles"
)

// renderStatusBar renders contextual key hints.
func (r *Renderer) renderStatusBar(width int) string {
	hints := r.contextualHints()

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, styles.StatusBarKey.Render(h[0])+styles.StatusBarText.Render(":"+h[1]))
	}

	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > width {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return styles.StatusBar.Render(line)
}

func (r *Renderer) contextualHints() [][2]string {
	k := r.Keymap
	switch {
	case r.ConfirmDelete:
		return [][2]string{{k.Confirm.Key, "delete"}, {k.Decline.Key + "/esc", "keep"}}
	case r.ShowHelp:
		return [][2]string{{"esc", "close"}}
	case r.Focus != state.FocusList:
		return [][2]string{{"tab", "next"}, {"enter", "submit"}, {"esc", "list"}, {"ctrl+c", "quit"}}
	case r.EditingSelected():
		return [][2]string{{k.Update.Key, "update"}, {k.Cancel.Key, "cancel"}, {"tab", "field"}, {"↑/↓", "move"}}
	}
	return [][2]string{
		{k.Down.Key + "/" + k.Up.Key, "move"},
		{k.Edit.Key, "edit"},
		{"dd", "delete"},
		{"yy", "copy"},
		{k.FocusForm.Key, "add"},
		{k.Refresh.Key, "reload"},
		{k.Help.Key, "help"},
		{k.Quit.Key, "quit"},
	}
}
