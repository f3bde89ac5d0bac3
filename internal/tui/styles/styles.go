// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#1F305E", Dark: "#B0C4DE"}

	// RowBackground is the light steel blue used behind list rows
	RowBackground = lipgloss.AdaptiveColor{Light: "#B0C4DE", Dark: "#2A3445"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Header is the banner at the top of the screen
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#212529")).
		Padding(0, 2).
		Align(lipgloss.Center)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Row styles
var (
	// Row is the base style for a todo row
	Row = lipgloss.NewStyle().
		PaddingLeft(2).
		Background(RowBackground)

	// RowSelected is the style for the row under the cursor
	RowSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Background(RowBackground)

	// RowTitle is for the item title
	RowTitle = lipgloss.NewStyle().
			Bold(true)

	// RowDescription is for the item description
	RowDescription = lipgloss.NewStyle().
			Foreground(Subtle)

	// Empty is shown when the list has no items
	Empty = lipgloss.NewStyle().
		Foreground(Subtle).
		Italic(true).
		PaddingLeft(2)
)

// Feedback styles
var (
	// ErrorText is the red error banner
	ErrorText = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SuccessText is the green success banner
	SuccessText = lipgloss.NewStyle().
			Foreground(SuccessColor)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle).
			PaddingTop(1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// SectionHeader is for group headings in the help view
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1F305E"))
)

// Input styles
var (
	// Input is the style for text inputs
	Input = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// InputFocused is for focused inputs
	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	// Button is for the submit button
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#212529")).
		Padding(0, 2)

	// ButtonFocused is the submit button when focused
	ButtonFocused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#002D72")).
			Padding(0, 2)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor).
		Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)
)

// Spinner style
var Spinner = lipgloss.NewStyle().Foreground(Highlight)
