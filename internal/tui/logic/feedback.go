package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const notificationTitle = "TODO-LIST"

// showMessage sets the success banner and schedules clearing it.
// The clear is not tied to this message: a newer message set before the
// timer fires is cleared early by the older timer.
func (h *Handler) showMessage(text string) tea.Cmd {
	h.Feedback.Message = text

	cmds := []tea.Cmd{clearMessageAfter(h.FeedbackTimeout)}
	if h.Notify != nil {
		notify := h.Notify
		logger := h.Logger
		cmds = append(cmds, func() tea.Msg {
			if err := notify(notificationTitle, text); err != nil {
				logger.Warn("desktop notification failed", "err", err)
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func clearMessageAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// showError sets the error banner. It stays until another action replaces it.
func (h *Handler) showError(text string) {
	h.Feedback.Err = text
}
