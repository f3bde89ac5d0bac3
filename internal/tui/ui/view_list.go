package ui

import (
	"strings"

	"github.com/hy4ri/todolist-tui/internal/api"
	"github.com/hy4ri/todolist-tui/internal/tui/state"
	"github.com/hy4ri/todolist-tui/internal/tui/styles"
)

// renderList renders the "TODO" section: one block per item, the row in
// edit mode rendered as two inputs.
func (r *Renderer) renderList(width int) string {
	var b strings.Builder

	heading := styles.Title.Render("TODO")
	if r.Loading() {
		heading += " " + r.Spinner.View()
	}
	b.WriteString(heading)
	b.WriteString("\n")

	if len(r.Todos) == 0 {
		if r.Loading() {
			b.WriteString(styles.Empty.Render("Loading..."))
		} else {
			b.WriteString(styles.Empty.Render("No items yet"))
		}
		return b.String()
	}

	start, end := r.visibleRange()
	for i := start; i < end; i++ {
		item := r.Todos[i]
		selected := r.Focus == state.FocusList && i == r.Cursor

		if item.ID == r.Edit.EditID {
			b.WriteString(r.renderEditRow(width, selected))
		} else {
			b.WriteString(r.renderRow(item, width, selected))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (r *Renderer) renderRow(item api.TodoItem, width int, selected bool) string {
	style := styles.Row
	if selected {
		style = styles.RowSelected
	}
	inner := width - style.GetHorizontalFrameSize()

	title := styles.RowTitle.Render(truncateString(item.Title, inner))
	desc := styles.RowDescription.Render(truncateString(item.Description, inner))
	return style.Width(width).Render(title + "\n" + desc)
}

func (r *Renderer) renderEditRow(width int, selected bool) string {
	style := styles.Row
	if selected {
		style = styles.RowSelected
	}

	titleFocused := selected && r.Edit.Field == state.EditFieldTitle
	descFocused := selected && r.Edit.Field == state.EditFieldDescription

	hints := styles.StatusBarKey.Render(r.Keymap.Update.Key) + styles.StatusBarText.Render(" Update  ") +
		styles.StatusBarKey.Render(r.Keymap.Cancel.Key) + styles.StatusBarText.Render(" Cancel")

	return style.Width(width).Render(
		r.renderInput("Title", r.Edit.Title.View(), titleFocused) + "\n" +
			r.renderInput("Description", r.Edit.Description.View(), descFocused) + "\n" +
			hints,
	)
}

// visibleRange returns the slice of rows that fits the screen, keeping the
// cursor in view.
func (r *Renderer) visibleRange() (int, int) {
	n := len(r.Todos)
	// Rows take two lines, the edit row more; the rest of the screen is
	// header, form and status bar.
	fit := (r.Height - 20) / 2
	if r.Edit.Active() {
		fit -= 3
	}
	if fit < 3 {
		fit = 3
	}
	if n <= fit {
		return 0, n
	}

	start := r.Cursor - fit/2
	if start < 0 {
		start = 0
	}
	end := start + fit
	if end > n {
		end = n
		start = end - fit
	}
	return start, end
}
