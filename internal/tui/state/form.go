package state

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todolist-tui/internal/api"
)

// NoEdit is the EditID sentinel meaning no row is being edited.
const NoEdit = ""

const defaultInputWidth = 40

// newInput creates a single-line input without a length limit.
func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 0
	in.Width = defaultInputWidth
	return in
}

// FormState is the create draft.
type FormState struct {
	Title       textinput.Model
	Description textinput.Model
}

// NewFormState creates an empty create draft.
func NewFormState() FormState {
	return FormState{
		Title:       newInput("Title"),
		Description: newInput("Description"),
	}
}

// Request returns the draft as a request body. Values are sent untrimmed.
func (f *FormState) Request() api.TodoRequest {
	return api.TodoRequest{
		Title:       f.Title.Value(),
		Description: f.Description.Value(),
	}
}

// Clear empties both fields.
func (f *FormState) Clear() {
	f.Title.Reset()
	f.Description.Reset()
}

// SetWidth resizes both inputs.
func (f *FormState) SetWidth(w int) {
	f.Title.Width = w
	f.Description.Width = w
}

// EditField identifies the focused edit input.
type EditField int

const (
	EditFieldTitle EditField = iota
	EditFieldDescription
)

// EditState is the inline edit draft. At most one row is in edit mode, the
// one whose ID equals EditID.
type EditState struct {
	EditID      string
	Title       textinput.Model
	Description textinput.Model
	Field       EditField

	// The item as loaded, and what the inputs showed right after seeding.
	// Inputs are single-line, so a multi-line value is flattened on display.
	orig   api.TodoItem
	seeded api.TodoItem
}

// NewEditState creates an edit state with no row in edit mode.
func NewEditState() EditState {
	return EditState{
		EditID:      NoEdit,
		Title:       newInput("Title"),
		Description: newInput("Description"),
	}
}

// Active reports whether a row is in edit mode.
func (e *EditState) Active() bool {
	return e.EditID != NoEdit
}

// Begin puts item into edit mode and seeds the inputs from it.
// Unsaved values from a previous edit are overwritten.
func (e *EditState) Begin(item api.TodoItem) tea.Cmd {
	e.EditID = item.ID
	e.Title.SetValue(item.Title)
	e.Description.SetValue(item.Description)
	e.orig = item
	e.seeded = api.TodoItem{ID: item.ID, Title: e.Title.Value(), Description: e.Description.Value()}
	e.Field = EditFieldTitle
	e.Description.Blur()
	return e.Title.Focus()
}

// Exit leaves edit mode. Input values are kept but not rendered.
func (e *EditState) Exit() {
	e.EditID = NoEdit
	e.Title.Blur()
	e.Description.Blur()
}

// Request returns the edit draft as a full-replace body. A field the user
// left as seeded is sent with the item's original value.
func (e *EditState) Request() api.TodoRequest {
	req := api.TodoRequest{
		Title:       e.Title.Value(),
		Description: e.Description.Value(),
	}
	if req.Title == e.seeded.Title {
		req.Title = e.orig.Title
	}
	if req.Description == e.seeded.Description {
		req.Description = e.orig.Description
	}
	return req
}

// ToggleField moves focus between the two edit inputs.
func (e *EditState) ToggleField() tea.Cmd {
	if e.Field == EditFieldTitle {
		e.Field = EditFieldDescription
		e.Title.Blur()
		return e.Description.Focus()
	}
	e.Field = EditFieldTitle
	e.Description.Blur()
	return e.Title.Focus()
}

// Focused returns the currently focused edit input.
func (e *EditState) Focused() *textinput.Model {
	if e.Field == EditFieldDescription {
		return &e.Description
	}
	return &e.Title
}

// SetWidth resizes both inputs.
func (e *EditState) SetWidth(w int) {
	e.Title.Width = w
	e.Description.Width = w
}

// FeedbackState holds the transient banners. Message auto-clears, Err stays
// until the next action replaces it.
type FeedbackState struct {
	Err     string
	Message string
}
