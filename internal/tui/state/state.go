package state

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/todolist-tui/internal/api"
	"github.com/hy4ri/todolist-tui/internal/config"
	"github.com/hy4ri/todolist-tui/internal/logging"
	"github.com/hy4ri/todolist-tui/internal/tui/styles"
)

// Focus identifies which part of the screen receives keys.
type Focus int

const (
	FocusTitle Focus = iota
	FocusDescription
	FocusSubmit
	FocusList
)

const focusCount = 4

// Notifier sends a desktop notification.
type Notifier func(title, message string) error

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter func(text string) error

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config
	Logger *log.Logger

	// Data mirrored from the server, in server order
	Todos []api.TodoItem

	// Drafts and feedback
	Form     FormState
	Edit     EditState
	Feedback FeedbackState

	// FeedbackTimeout is how long Feedback.Message stays visible
	FeedbackTimeout time.Duration

	// List state
	Focus  Focus
	Cursor int

	// Delete confirmation
	ConfirmDelete   bool
	PendingDeleteID string

	// UI state
	Pending  int // requests in flight
	ShowHelp bool
	Width    int
	Height   int

	// Components
	Spinner  spinner.Model
	Keymap   KeymapData
	KeyState *KeyState

	// Side effects, swappable in tests
	Notify        Notifier
	CopyClipboard ClipboardWriter
}

// New creates the initial state with the create form focused.
func New(client *api.Client, cfg *config.Config, logger *log.Logger) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	st := &State{
		Client:          client,
		Config:          cfg,
		Logger:          logger,
		Todos:           []api.TodoItem{},
		Form:            NewFormState(),
		Edit:            NewEditState(),
		FeedbackTimeout: cfg.UI.FeedbackTimeout,
		Focus:           FocusTitle,
		Spinner:         s,
		Keymap:          DefaultKeymap(),
		KeyState:        &KeyState{},
		CopyClipboard:   clipboard.WriteAll,
	}
	if st.FeedbackTimeout <= 0 {
		st.FeedbackTimeout = config.DefaultFeedbackTimeout
	}
	if cfg.UI.Notifications {
		st.Notify = func(title, message string) error {
			return beeep.Notify(title, message, "")
		}
	}
	st.Form.Title.Focus()
	return st
}

// Loading reports whether any request is in flight.
func (s *State) Loading() bool {
	return s.Pending > 0
}

// SelectedTodo returns the item under the cursor.
func (s *State) SelectedTodo() (api.TodoItem, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Todos) {
		return api.TodoItem{}, false
	}
	return s.Todos[s.Cursor], true
}

// ClampCursor keeps the cursor inside the list after it was replaced.
func (s *State) ClampCursor() {
	if s.Cursor >= len(s.Todos) {
		s.Cursor = len(s.Todos) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// EditingSelected reports whether the row under the cursor is in edit mode,
// in which case keys go to the edit inputs.
func (s *State) EditingSelected() bool {
	if !s.Edit.Active() || s.Focus != FocusList {
		return false
	}
	item, ok := s.SelectedTodo()
	return ok && item.ID == s.Edit.EditID
}

// SetFocus moves focus and updates which inputs are focused.
func (s *State) SetFocus(f Focus) tea.Cmd {
	s.Focus = f
	s.Form.Title.Blur()
	s.Form.Description.Blur()

	switch f {
	case FocusTitle:
		return s.Form.Title.Focus()
	case FocusDescription:
		return s.Form.Description.Focus()
	}
	return s.SyncEditFocus()
}

// NextFocus cycles focus forward (delta 1) or backward (delta -1).
func (s *State) NextFocus(delta int) tea.Cmd {
	next := (int(s.Focus) + delta + focusCount) % focusCount
	return s.SetFocus(Focus(next))
}

// SyncEditFocus focuses the edit inputs only while the cursor sits on the
// row in edit mode.
func (s *State) SyncEditFocus() tea.Cmd {
	if !s.EditingSelected() {
		s.Edit.Title.Blur()
		s.Edit.Description.Blur()
		return nil
	}
	return s.Edit.Focused().Focus()
}

// FocusedInput returns the text input that should receive typed keys, if any.
func (s *State) FocusedInput() *textinput.Model {
	switch s.Focus {
	case FocusTitle:
		return &s.Form.Title
	case FocusDescription:
		return &s.Form.Description
	case FocusList:
		if s.EditingSelected() {
			return s.Edit.Focused()
		}
	}
	return nil
}
