package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todolist-tui/internal/tui/state"
)

// handleKeyMsg routes a key press by what currently owns the keyboard:
// the delete prompt, the help overlay, the create form or the list.
func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if h.ConfirmDelete {
		return h.handleConfirmKeys(msg)
	}

	if h.ShowHelp {
		switch msg.String() {
		case h.Keymap.Help.Key, "esc", h.Keymap.Quit.Key:
			h.ShowHelp = false
		}
		return nil
	}

	switch h.Focus {
	case state.FocusTitle, state.FocusDescription, state.FocusSubmit:
		return h.handleFormKeys(msg)
	default:
		if h.EditingSelected() {
			return h.handleEditKeys(msg)
		}
		return h.handleListKeys(msg)
	}
}

func (h *Handler) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case h.Keymap.Confirm.Key, "Y":
		return h.ConfirmPendingDelete()
	case h.Keymap.Decline.Key, "N", "esc":
		h.DeclinePendingDelete()
	}
	return nil
}

func (h *Handler) handleFormKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return h.NextFocus(1)
	case "shift+tab", "up":
		return h.NextFocus(-1)
	case "esc":
		return h.SetFocus(state.FocusList)
	case "enter":
		return h.Submit()
	}

	if h.Focus == state.FocusSubmit {
		if msg.String() == h.Keymap.Quit.Key {
			return tea.Quit
		}
		return nil
	}

	in := h.FocusedInput()
	if in == nil {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

// handleEditKeys handles keys while the cursor is on the row in edit mode.
func (h *Handler) handleEditKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case h.Keymap.Update.Key:
		return h.SubmitEdit()
	case h.Keymap.Cancel.Key:
		h.CancelEdit()
		return nil
	case "tab", "shift+tab":
		return h.Edit.ToggleField()
	case "up":
		return h.moveCursor(-1)
	case "down":
		return h.moveCursor(1)
	}

	var cmd tea.Cmd
	in := h.Edit.Focused()
	*in, cmd = in.Update(msg)
	return cmd
}

func (h *Handler) handleListKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		h.KeyState.Reset()
		return h.NextFocus(1)
	case "shift+tab":
		h.KeyState.Reset()
		return h.NextFocus(-1)
	case "esc":
		h.KeyState.Reset()
		if h.Edit.Active() {
			h.CancelEdit()
		}
		return nil
	}

	action, ok := h.KeyState.HandleKey(msg, h.Keymap)
	if !ok {
		return nil
	}

	switch action {
	case "up":
		return h.moveCursor(-1)
	case "down":
		return h.moveCursor(1)
	case "top":
		return h.moveCursorTo(0)
	case "bottom":
		return h.moveCursorTo(len(h.Todos) - 1)
	case "edit":
		if item, ok := h.SelectedTodo(); ok {
			return h.BeginEdit(item)
		}
	case "delete":
		if item, ok := h.SelectedTodo(); ok {
			h.RequestDelete(item.ID)
		}
	case "copy":
		if item, ok := h.SelectedTodo(); ok {
			return h.Copy(item)
		}
	case "refresh":
		return h.Load()
	case "focus_form":
		return h.SetFocus(state.FocusTitle)
	case "help":
		h.ShowHelp = true
	case "quit":
		return tea.Quit
	}
	return nil
}

func (h *Handler) moveCursor(delta int) tea.Cmd {
	return h.moveCursorTo(h.Cursor + delta)
}

func (h *Handler) moveCursorTo(i int) tea.Cmd {
	h.Cursor = i
	h.ClampCursor()
	return h.SyncEditFocus()
}
