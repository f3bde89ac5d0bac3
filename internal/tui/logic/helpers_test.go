package logic

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todolist-tui/internal/api"
	"github.com/hy4ri/todolist-tui/internal/devserver"
	"github.com/hy4ri/todolist-tui/internal/logging"
	"github.com/hy4ri/todolist-tui/internal/tui/state"
)

// requestLog records the method and path of every request a test server sees.
type requestLog struct {
	mu   sync.Mutex
	reqs []string
}

func (l *requestLog) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l.mu.Lock()
		l.reqs = append(l.reqs, r.Method+" "+r.URL.Path)
		l.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (l *requestLog) count(method string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, r := range l.reqs {
		if len(r) > len(method) && r[:len(method)+1] == method+" " {
			n++
		}
	}
	return n
}

func (l *requestLog) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.reqs)
}

// newTestHandler wires a handler to an in-memory backend seeded with items.
func newTestHandler(t *testing.T, seed ...api.TodoRequest) (*Handler, *devserver.Server, *requestLog) {
	t.Helper()

	srv := devserver.New(logging.Discard())
	for _, req := range seed {
		if _, err := srv.Store.Create(req); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	reqs := &requestLog{}
	ts := httptest.NewServer(reqs.wrap(srv))
	t.Cleanup(ts.Close)

	return newHandlerFor(ts.URL), srv, reqs
}

func newHandlerFor(baseURL string) *Handler {
	s := state.New(api.NewClient(baseURL), nil, logging.Discard())
	s.FeedbackTimeout = 20 * time.Millisecond
	s.CopyClipboard = nil
	// Blinking cursors would hand back commands that sleep.
	for _, in := range []*textinput.Model{
		&s.Form.Title, &s.Form.Description, &s.Edit.Title, &s.Edit.Description,
	} {
		in.Cursor.SetMode(cursor.CursorStatic)
	}
	return NewHandler(s)
}

// drain runs cmd and feeds every resulting handler message back through
// Update until nothing is left. Feedback clears are returned, not applied.
func drain(t *testing.T, h *Handler, cmd tea.Cmd) (clears int) {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case clearMessageMsg:
			clears++
		case todosLoadedMsg, loadFailedMsg, todoCreatedMsg, todoUpdatedMsg,
			todoDeletedMsg, actionFailedMsg, copiedMsg:
			queue = append(queue, h.Update(msg))
		}
	}
	return clears
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each key through Update and drains the result.
func press(t *testing.T, h *Handler, keys ...string) {
	t.Helper()
	for _, k := range keys {
		drain(t, h, h.Update(key(k)))
	}
}

func titles(items []api.TodoItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}
