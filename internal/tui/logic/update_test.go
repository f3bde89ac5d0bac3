package logic

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todolist-tui/internal/api"
	"github.com/hy4ri/todolist-tui/internal/logging"
)

func TestInit_LoadsTodos(t *testing.T) {
	h, _, reqs := newTestHandler(t,
		api.TodoRequest{Title: "first", Description: "a"},
		api.TodoRequest{Title: "second", Description: "b"},
	)

	drain(t, h, h.Init())

	if got, want := titles(h.Todos), []string{"first", "second"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if reqs.count(http.MethodGet) != 1 {
		t.Errorf("expected one GET, got %d", reqs.count(http.MethodGet))
	}
	if h.Loading() {
		t.Error("expected no request in flight")
	}
	if h.Feedback.Err != "" {
		t.Errorf("unexpected error %q", h.Feedback.Err)
	}
}

func TestInit_NetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	h := newHandlerFor(url)
	drain(t, h, h.Init())

	if h.Feedback.Err != ErrFetchTodos {
		t.Errorf("expected %q, got %q", ErrFetchTodos, h.Feedback.Err)
	}
	if len(h.Todos) != 0 {
		t.Errorf("expected empty list, got %d items", len(h.Todos))
	}
	if h.Pending != 0 {
		t.Errorf("expected pending 0, got %d", h.Pending)
	}
}

func TestLoad_FailureKeepsList(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "redirect is not followed as success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotModified)
			},
		},
		{
			name: "payload of the wrong shape",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"todos": []}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			h := newHandlerFor(ts.URL)
			existing := []api.TodoItem{{ID: "1", Title: "kept", Description: "x"}}
			h.Todos = existing

			drain(t, h, h.Load())

			if h.Feedback.Err != ErrFetchTodos {
				t.Errorf("expected %q, got %q", ErrFetchTodos, h.Feedback.Err)
			}
			if !reflect.DeepEqual(h.Todos, existing) {
				t.Errorf("expected list unchanged, got %v", h.Todos)
			}
		})
	}
}

func TestLoad_SuccessKeepsError(t *testing.T) {
	h, _, _ := newTestHandler(t, api.TodoRequest{Title: "a", Description: "b"})
	h.Feedback.Err = ErrDeleteTodo

	drain(t, h, h.Load())

	if h.Feedback.Err != ErrDeleteTodo {
		t.Errorf("load success should not clear the error, got %q", h.Feedback.Err)
	}
	if len(h.Todos) != 1 {
		t.Errorf("expected 1 item, got %d", len(h.Todos))
	}
}

func TestLoad_LastResponseWins(t *testing.T) {
	h := newHandlerFor("http://unused.invalid")
	h.Pending = 2

	older := []api.TodoItem{{ID: "1", Title: "old"}}
	newer := []api.TodoItem{{ID: "1", Title: "old"}, {ID: "2", Title: "new"}}

	h.Update(todosLoadedMsg{todos: newer})
	h.Update(todosLoadedMsg{todos: older})

	if !reflect.DeepEqual(h.Todos, older) {
		t.Errorf("expected the last delivered list, got %v", h.Todos)
	}
	if h.Pending != 0 {
		t.Errorf("expected pending 0, got %d", h.Pending)
	}
}

func TestLoad_ClampsCursor(t *testing.T) {
	h := newHandlerFor("http://unused.invalid")
	h.Cursor = 5
	h.Update(todosLoadedMsg{todos: []api.TodoItem{{ID: "1"}, {ID: "2"}}})

	if h.Cursor != 1 {
		t.Errorf("expected cursor 1, got %d", h.Cursor)
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	h := newHandlerFor("http://unused.invalid")
	h.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if h.Width != 100 || h.Height != 40 {
		t.Errorf("expected 100x40, got %dx%d", h.Width, h.Height)
	}
	if h.Form.Title.Width != 42 || h.Edit.Description.Width != 42 {
		t.Errorf("expected input width 42, got %d/%d", h.Form.Title.Width, h.Edit.Description.Width)
	}
}

func TestUpdate_CopyResult(t *testing.T) {
	h := newHandlerFor("http://unused.invalid")

	h.Update(copiedMsg{err: errors.New("no clipboard")})
	if h.Feedback.Err != ErrCopyTodo {
		t.Errorf("expected %q, got %q", ErrCopyTodo, h.Feedback.Err)
	}

	h.Update(copiedMsg{})
	if h.Feedback.Message != MsgCopied {
		t.Errorf("expected %q, got %q", MsgCopied, h.Feedback.Message)
	}
}

func TestLoad_FailureIsLogged(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	var buf bytes.Buffer
	h := newHandlerFor(ts.URL)
	h.Logger = logging.New(&buf, "info", "")

	drain(t, h, h.Load())

	out := buf.String()
	for _, want := range []string{"fetch todos", "status=503", "request_id=", "down for maintenance"} {
		if !strings.Contains(out, want) {
			t.Errorf("log should contain %q, got %q", want, out)
		}
	}
}
