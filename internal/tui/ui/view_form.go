package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todolist-tui/internal/tui/state"
	"github.com/hy4ri/todolist-tui/internal/tui/styles"
)

const submitLabel = "Submit"

// renderForm renders the "Add Item" form.
func (r *Renderer) renderForm(width int) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Add Item"))
	b.WriteString("\n")

	b.WriteString(r.renderInput("Title", r.Form.Title.View(), r.Focus == state.FocusTitle))
	b.WriteString("\n")
	b.WriteString(r.renderInput("Description", r.Form.Description.View(), r.Focus == state.FocusDescription))
	b.WriteString("\n")

	button := styles.Button
	if r.Focus == state.FocusSubmit {
		button = styles.ButtonFocused
	}
	b.WriteString(button.Render(submitLabel))
	b.WriteString("\n")

	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

func (r *Renderer) renderInput(label, input string, focused bool) string {
	box := styles.Input
	if focused {
		box = styles.InputFocused
	}
	return styles.Subtitle.Render(label) + "\n" + box.Render(input)
}
