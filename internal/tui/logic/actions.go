package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todolist-tui/internal/api"
)

// Submit creates an item from the form draft. Blank fields make it a no-op.
func (h *Handler) Submit() tea.Cmd {
	req := h.Form.Request()
	if !req.Valid() {
		return nil
	}
	h.Feedback.Err = ""
	return h.createTodo(req)
}

// BeginEdit puts item into edit mode, silently dropping any unsaved edit of
// another row.
func (h *Handler) BeginEdit(item api.TodoItem) tea.Cmd {
	cmd := h.Edit.Begin(item)
	return tea.Batch(cmd, h.SyncEditFocus())
}

// SubmitEdit sends the edit draft as a full replace of the row in edit mode.
// Blank fields make it a no-op. Edit mode is only left once the server
// acknowledges the update.
func (h *Handler) SubmitEdit() tea.Cmd {
	if !h.Edit.Active() {
		return nil
	}
	req := h.Edit.Request()
	if !req.Valid() {
		return nil
	}
	h.Feedback.Err = ""
	return h.updateTodo(h.Edit.EditID, req)
}

// CancelEdit leaves edit mode without touching the draft values.
func (h *Handler) CancelEdit() {
	h.Edit.Exit()
}

// RequestDelete opens the confirmation prompt for id.
func (h *Handler) RequestDelete(id string) {
	h.ConfirmDelete = true
	h.PendingDeleteID = id
}

// ConfirmPendingDelete sends the delete the prompt was opened for.
func (h *Handler) ConfirmPendingDelete() tea.Cmd {
	if !h.ConfirmDelete {
		return nil
	}
	id := h.PendingDeleteID
	h.ConfirmDelete = false
	h.PendingDeleteID = ""
	return h.deleteTodo(id)
}

// DeclinePendingDelete closes the prompt. Nothing is sent.
func (h *Handler) DeclinePendingDelete() {
	h.ConfirmDelete = false
	h.PendingDeleteID = ""
}

// Copy writes the item to the clipboard.
func (h *Handler) Copy(item api.TodoItem) tea.Cmd {
	write := h.CopyClipboard
	if write == nil {
		return nil
	}
	text := item.Title + "\n" + item.Description
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}
