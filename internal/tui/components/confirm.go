package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todolist-tui/internal/tui/styles"
)

// ConfirmModel renders a yes/no prompt in a bordered box.
type ConfirmModel struct {
	width, height int

	Title   string
	Body    string
	Confirm string
	Decline string
}

// NewConfirm creates a prompt asking question, answered with the given keys.
func NewConfirm(question, confirmKey, declineKey string) *ConfirmModel {
	return &ConfirmModel{
		Title:   question,
		Confirm: confirmKey,
		Decline: declineKey,
	}
}

// View implements Component.
func (c *ConfirmModel) View() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(c.Title))
	if c.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(c.Body)
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render(c.Confirm) + styles.HelpDesc.Render(" yes   "))
	b.WriteString(styles.HelpKey.Render(c.Decline) + styles.HelpDesc.Render(" no"))

	box := styles.Dialog.Render(b.String())
	if c.width == 0 {
		return box
	}
	return lipgloss.PlaceHorizontal(c.width, lipgloss.Center, box)
}

// SetSize implements Component.
func (c *ConfirmModel) SetSize(width, height int) {
	c.width = width
	c.height = height
}
