// Package logic holds the TodoView behavior: it turns key presses into
// requests against the todo API and folds the responses back into state.
package logic

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todolist-tui/internal/api"
	"github.com/hy4ri/todolist-tui/internal/tui/state"
)

// Handler embeds the shared state and implements the update side of the model.
type Handler struct {
	*state.State
}

// NewHandler creates a handler over s.
func NewHandler(s *state.State) *Handler {
	return &Handler{State: s}
}

// Init starts the spinner and loads the list.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.Load(),
	)
}

// Update applies msg to the state and returns the follow-up command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.handleWindowSize(msg)
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case todosLoadedMsg:
		h.requestDone()
		h.Todos = msg.todos
		h.ClampCursor()
		return h.SyncEditFocus()

	case loadFailedMsg:
		h.requestDone()
		h.logFailure("fetch todos", "", msg.err)
		h.showError(ErrFetchTodos)
		return nil

	case todoCreatedMsg:
		h.requestDone()
		h.Logger.Info("todo created")
		h.Form.Clear()
		return tea.Batch(h.Load(), h.showMessage(MsgAdded))

	case todoUpdatedMsg:
		h.requestDone()
		h.Logger.Info("todo updated", "id", msg.id)
		h.Edit.Exit()
		return tea.Batch(h.Load(), h.showMessage(MsgUpdated))

	case todoDeletedMsg:
		h.requestDone()
		h.Logger.Info("todo deleted", "id", msg.id)
		return tea.Batch(h.Load(), h.showMessage(MsgDeleted))

	case actionFailedMsg:
		h.requestDone()
		h.logFailure(msg.action.String()+" todo", msg.id, msg.err)
		h.showError(msg.action.errText())
		return nil

	case clearMessageMsg:
		h.Feedback.Message = ""
		return nil

	case copiedMsg:
		if msg.err != nil {
			h.Logger.Error("copy todo", "err", msg.err)
			h.showError(ErrCopyTodo)
			return nil
		}
		return h.showMessage(MsgCopied)
	}

	// Forward everything else (cursor blink) to the focused input.
	if in := h.FocusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) requestDone() {
	if h.Pending > 0 {
		h.Pending--
	}
}

// logFailure logs a failed request, with the request id when the server answered.
func (h *Handler) logFailure(what, id string, err error) {
	kv := []interface{}{"err", err}
	if id != "" {
		kv = append(kv, "id", id)
	}
	if apiErr, ok := api.IsAPIError(err); ok {
		kv = append(kv, "status", apiErr.StatusCode, "request_id", apiErr.RequestID)
	}
	h.Logger.Error(what, kv...)
}

func (h *Handler) handleWindowSize(msg tea.WindowSizeMsg) {
	h.Width = msg.Width
	h.Height = msg.Height

	inputWidth := msg.Width/2 - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 60 {
		inputWidth = 60
	}
	h.Form.SetWidth(inputWidth)
	h.Edit.SetWidth(inputWidth)
}
