package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the list.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Actions
	Quit      Key
	Help      Key
	Refresh   Key
	FocusForm Key

	// Item actions
	Edit   Key
	Delete Key
	Copy   Key
	Update Key
	Cancel Key

	// Delete confirmation
	Confirm Key
	Decline Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Quit:      Key{Key: "q", Help: "quit"},
		Help:      Key{Key: "?", Help: "help"},
		Refresh:   Key{Key: "r", Help: "refresh"},
		FocusForm: Key{Key: "a", Help: "add item"},

		Edit:   Key{Key: "e", Help: "edit"},
		Delete: Key{Key: "d", Help: "delete (dd)"},
		Copy:   Key{Key: "y", Help: "copy (yy)"},
		Update: Key{Key: "enter", Help: "update"},
		Cancel: Key{Key: "esc", Help: "cancel"},

		Confirm: Key{Key: "y", Help: "confirm"},
		Decline: Key{Key: "n", Help: "decline"},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
type KeyState struct {
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey maps a list key press to an action name.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == keymap.Top.Key {
			return "top", true
		}
	}

	if ks.WaitingD {
		ks.WaitingD = false
		if key == keymap.Delete.Key {
			return "delete", true
		}
	}

	if ks.WaitingY {
		ks.WaitingY = false
		if key == keymap.Copy.Key {
			return "copy", true
		}
	}

	switch key {
	case keymap.Top.Key:
		ks.WaitingG = true
		return "", true
	case keymap.Delete.Key:
		ks.WaitingD = true
		return "", true
	case keymap.Copy.Key:
		ks.WaitingY = true
		return "", true
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Bottom.Key, "end":
		return "bottom", true
	case "home":
		return "top", true
	case keymap.Edit.Key, "enter":
		return "edit", true
	case "delete":
		return "delete", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.FocusForm.Key:
		return "focus_form", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Quit.Key:
		return "quit", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Form", ""},
		{"tab/shift+tab", "Next/previous field"},
		{"enter", "Submit item"},
		{"esc", "Go to list"},
		{"", ""},
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/" + k.Bottom.Key, "Go to top/bottom"},
		{k.FocusForm.Key, "Add item (focus form)"},
		{"", ""},
		{"Item Actions", ""},
		{k.Edit.Key + "/enter", "Edit item"},
		{k.Update.Key, "Update (while editing)"},
		{"tab", "Switch edit field"},
		{k.Cancel.Key, "Cancel edit"},
		{"dd", "Delete item"},
		{"yy", "Copy item to clipboard"},
		{"", ""},
		{"General", ""},
		{k.Refresh.Key, "Reload list"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key + "/ctrl+c", "Quit"},
	}
}
