package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todolist-tui/internal/tui/styles"
)

const deletePrompt = "Are you sure you want to delete?"

// renderDeleteDialog renders the blocking delete confirmation.
func (r *Renderer) renderDeleteDialog(width int) string {
	r.confirm.Body = ""
	if item, ok := r.pendingDeleteItem(); ok {
		r.confirm.Body = styles.RowTitle.Render(truncateString(item, width-8))
	}
	r.confirm.SetSize(width, r.Height)
	return lipgloss.NewStyle().PaddingTop(1).PaddingBottom(1).Render(r.confirm.View())
}

func (r *Renderer) pendingDeleteItem() (string, bool) {
	for _, item := range r.Todos {
		if item.ID == r.PendingDeleteID {
			return item.Title, true
		}
	}
	return "", false
}

// renderHelp renders the keyboard shortcut overlay.
func (r *Renderer) renderHelp(width int) string {
	r.help.SetKeymap(r.Keymap.HelpItems())
	r.help.SetSize(width, r.Height)
	return r.help.View()
}
