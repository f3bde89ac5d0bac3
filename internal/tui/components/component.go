// Package components provides reusable UI pieces for the todo list TUI.
package components

// Component is a self-rendering part of the screen.
type Component interface {
	// View renders the component to a string.
	View() string

	// SetSize updates the component's dimensions.
	SetSize(width, height int)
}

var (
	_ Component = (*HelpModel)(nil)
	_ Component = (*ConfirmModel)(nil)
)
