package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todolist-tui/internal/tui/styles"
)

// HelpModel renders the keyboard shortcut overlay.
type HelpModel struct {
	width, height int
	keymap        [][]string
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// leftSections are rendered in the first column, the rest in the second.
var leftSections = map[string]bool{
	"Form":       true,
	"Navigation": true,
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	var col1, col2 strings.Builder
	current := &col1

	keyStyle := styles.HelpKey.Width(14).Align(lipgloss.Right).PaddingRight(2)

	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		key, desc := item[0], item[1]

		if desc == "" && key != "" {
			if leftSections[key] {
				current = &col1
			} else {
				current = &col2
			}
			current.WriteString("\n" + styles.SectionHeader.Render(" "+key+" ") + "\n")
			continue
		}

		if key == "" && desc == "" {
			continue
		}

		current.WriteString(keyStyle.Render(key) + styles.HelpDesc.Render(desc) + "\n")
	}

	colWidth := h.width / 2
	if colWidth > 44 {
		colWidth = 44
	}
	if colWidth < 30 {
		colWidth = 30
	}

	column := lipgloss.NewStyle().Width(colWidth).PaddingRight(2)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		column.Render(col1.String()),
		column.Render(col2.String()),
	))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Press esc or ? to close"))

	return b.String()
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetKeymap sets the key/description pairs. A pair with an empty
// description starts a section.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
}
