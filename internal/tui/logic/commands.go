package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todolist-tui/internal/api"
)

// Feedback texts shown to the user.
const (
	ErrFetchTodos = "Unable to fetch todos"
	ErrCreateTodo = "Unable to create todo item"
	ErrUpdateTodo = "Unable to update todo item"
	ErrDeleteTodo = "Unable to delete todo item"
	ErrCopyTodo   = "Unable to copy todo item"

	MsgAdded   = "Item added successfully"
	MsgUpdated = "Item updated successfully"
	MsgDeleted = "Item deleted successfully"
	MsgCopied  = "Item copied to clipboard"
)

// action names a mutating operation for error reporting.
type action int

const (
	actionCreate action = iota
	actionUpdate
	actionDelete
)

func (a action) String() string {
	switch a {
	case actionCreate:
		return "create"
	case actionUpdate:
		return "update"
	case actionDelete:
		return "delete"
	}
	return "unknown"
}

func (a action) errText() string {
	switch a {
	case actionCreate:
		return ErrCreateTodo
	case actionUpdate:
		return ErrUpdateTodo
	default:
		return ErrDeleteTodo
	}
}

// Message types
type todosLoadedMsg struct{ todos []api.TodoItem }
type loadFailedMsg struct{ err error }
type todoCreatedMsg struct{}
type todoUpdatedMsg struct{ id string }
type todoDeletedMsg struct{ id string }
type actionFailedMsg struct {
	action action
	id     string
	err    error
}
type clearMessageMsg struct{}
type copiedMsg struct{ err error }

// Load fetches the whole collection.
func (h *Handler) Load() tea.Cmd {
	h.Pending++
	client := h.Client
	return func() tea.Msg {
		todos, err := client.GetTodos()
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return todosLoadedMsg{todos: todos}
	}
}

func (h *Handler) createTodo(req api.TodoRequest) tea.Cmd {
	h.Pending++
	client := h.Client
	return func() tea.Msg {
		if _, err := client.CreateTodo(req); err != nil {
			return actionFailedMsg{action: actionCreate, err: err}
		}
		return todoCreatedMsg{}
	}
}

func (h *Handler) updateTodo(id string, req api.TodoRequest) tea.Cmd {
	h.Pending++
	client := h.Client
	return func() tea.Msg {
		if _, err := client.UpdateTodo(id, req); err != nil {
			return actionFailedMsg{action: actionUpdate, id: id, err: err}
		}
		return todoUpdatedMsg{id: id}
	}
}

func (h *Handler) deleteTodo(id string) tea.Cmd {
	h.Pending++
	client := h.Client
	return func() tea.Msg {
		if err := client.DeleteTodo(id); err != nil {
			return actionFailedMsg{action: actionDelete, id: id, err: err}
		}
		return todoDeletedMsg{id: id}
	}
}
