package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// mockServer creates a test HTTP server for mocking API responses.
func mockServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

func TestNewClient(t *testing.T) {
	client := NewClient("")
	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected default base URL %q, got %q", DefaultBaseURL, client.baseURL)
	}

	client = NewClient("http://localhost:8080/", WithTimeout(5*time.Second))
	if client.baseURL != "http://localhost:8080" {
		t.Errorf("expected trailing slash trimmed, got %q", client.baseURL)
	}
	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", client.httpClient.Timeout)
	}

	if NewClient("http://x").httpClient.Timeout != 0 {
		t.Error("expected no timeout by default")
	}
}

// recordingTransport answers every request itself and remembers the last one.
type recordingTransport struct {
	last *http.Request
	body string
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.last = req
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(rt.body)),
		Request:    req,
	}, nil
}

func TestSetHTTPClient(t *testing.T) {
	transport := &recordingTransport{body: `[{"_id":"1","title":"a","description":"b"}]`}
	client := NewClient("http://todo.test")
	client.SetHTTPClient(&http.Client{Transport: transport})

	todos, err := client.GetTodos()
	if err != nil {
		t.Fatalf("GetTodos() error: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != "1" {
		t.Errorf("unexpected todos %+v", todos)
	}
	if transport.last == nil {
		t.Fatal("expected the request to go through the custom transport")
	}
	if got := transport.last.URL.String(); got != "http://todo.test/todos" {
		t.Errorf("expected http://todo.test/todos, got %q", got)
	}
	if transport.last.Header.Get("Accept") != "application/json" {
		t.Error("expected JSON accept header")
	}
}

func TestGetTodos(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		statusCode int
		wantIDs    []string
		wantErr    bool
		wantSchema bool
	}{
		{
			name:       "mongo style ids",
			body:       `[{"_id":"a1","title":"Buy milk","description":"2%"},{"_id":"b2","title":"Walk","description":"dog"}]`,
			statusCode: http.StatusOK,
			wantIDs:    []string{"a1", "b2"},
		},
		{
			name:       "numeric ids",
			body:       `[{"id":7,"title":"Read","description":"book"}]`,
			statusCode: http.StatusOK,
			wantIDs:    []string{"7"},
		},
		{
			name:       "empty collection",
			body:       `[]`,
			statusCode: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name:       "row without description",
			body:       `[{"_id":"1","title":"Read"},{"_id":"2","title":"Walk","description":"dog"}]`,
			statusCode: http.StatusOK,
			wantIDs:    []string{"1", "2"},
		},
		{
			name:       "server error",
			body:       `oops`,
			statusCode: http.StatusInternalServerError,
			wantErr:    true,
		},
		{
			name:       "missing id",
			body:       `[{"title":"Read","description":"book"}]`,
			statusCode: http.StatusOK,
			wantErr:    true,
			wantSchema: true,
		},
		{
			name:       "object instead of array",
			body:       `{"todos":[]}`,
			statusCode: http.StatusOK,
			wantErr:    true,
			wantSchema: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET request, got %s", r.Method)
				}
				if r.URL.Path != "/todos" {
					t.Errorf("expected path /todos, got %s", r.URL.Path)
				}
				if r.Header.Get(RequestIDHeader) == "" {
					t.Error("expected request id header")
				}
				w.WriteHeader(tt.statusCode)
				io.WriteString(w, tt.body)
			})
			defer server.Close()

			client := NewClient(server.URL)
			todos, err := client.GetTodos()

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantSchema && !errors.Is(err, ErrInvalidPayload) {
					t.Errorf("expected ErrInvalidPayload, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(todos) != len(tt.wantIDs) {
				t.Fatalf("expected %d todos, got %d", len(tt.wantIDs), len(todos))
			}
			for i, id := range tt.wantIDs {
				if todos[i].ID != id {
					t.Errorf("todo %d: expected id %q, got %q", i, id, todos[i].ID)
				}
			}
		})
	}
}

func TestGetTodos_NotFoundIsAPIError(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	defer server.Close()

	_, err := NewClient(server.URL).GetTodos()
	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if !apiErr.IsNotFound() {
		t.Errorf("expected 404, got %d", apiErr.StatusCode)
	}
	if apiErr.RequestID == "" {
		t.Error("expected request id on APIError")
	}
}

func TestGetTodos_TransportError(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {})
	url := server.URL
	server.Close()

	_, err := NewClient(url).GetTodos()
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if _, ok := IsAPIError(err); ok {
		t.Error("transport failure should not be an APIError")
	}
}

func TestCreateTodo(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/todos" {
			t.Errorf("expected path /todos, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}

		var req TodoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if req.Title != "Buy milk" || req.Description != "2%" {
			t.Errorf("unexpected body: %+v", req)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(TodoItem{ID: "new", Title: req.Title, Description: req.Description})
	})
	defer server.Close()

	item, err := NewClient(server.URL).CreateTodo(TodoRequest{Title: "Buy milk", Description: "2%"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != "new" {
		t.Errorf("expected id new, got %q", item.ID)
	}
}

func TestCreateTodo_EmptyBodyAccepted(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	defer server.Close()

	if _, err := NewClient(server.URL).CreateTodo(TodoRequest{Title: "a", Description: "b"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWriteTodo_NonItemBodyIsSuccess(t *testing.T) {
	bodies := []struct {
		name string
		body string
	}{
		{name: "status string", body: `"Todo updated"`},
		{name: "boolean", body: `true`},
		{name: "object id", body: `{"_id":{"$oid":"abc"}}`},
		{name: "not json", body: `ok`},
		{name: "empty", body: ``},
	}

	for _, tt := range bodies {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				io.WriteString(w, tt.body)
			})
			defer server.Close()

			client := NewClient(server.URL)

			created, err := client.CreateTodo(TodoRequest{Title: "a", Description: "b"})
			if err != nil {
				t.Errorf("CreateTodo() error = %v, want nil", err)
			}
			if created == nil {
				t.Error("expected a non-nil item from CreateTodo")
			}

			updated, err := client.UpdateTodo("1", TodoRequest{Title: "a", Description: "b"})
			if err != nil {
				t.Errorf("UpdateTodo() error = %v, want nil", err)
			}
			if updated == nil {
				t.Error("expected a non-nil item from UpdateTodo")
			}
		})
	}
}

func TestUpdateTodo(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantPath   string
		statusCode int
		wantErr    bool
	}{
		{name: "ok", id: "abc", wantPath: "/todos/abc", statusCode: http.StatusOK},
		{name: "escaped id", id: "a b", wantPath: "/todos/a b", statusCode: http.StatusOK},
		{name: "rejected", id: "abc", wantPath: "/todos/abc", statusCode: http.StatusBadRequest, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPut {
					t.Errorf("expected PUT request, got %s", r.Method)
				}
				if r.URL.Path != tt.wantPath {
					t.Errorf("expected path %q, got %q", tt.wantPath, r.URL.Path)
				}
				w.WriteHeader(tt.statusCode)
				io.WriteString(w, `{"_id":"abc","title":"t","description":"d"}`)
			})
			defer server.Close()

			_, err := NewClient(server.URL).UpdateTodo(tt.id, TodoRequest{Title: "t", Description: "d"})
			if (err != nil) != tt.wantErr {
				t.Errorf("UpdateTodo() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				apiErr, ok := IsAPIError(err)
				if !ok || !apiErr.IsBadRequest() {
					t.Errorf("expected bad request APIError, got %v", err)
				}
			}
		})
	}
}

func TestDeleteTodo(t *testing.T) {
	var gotPath string
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE request, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "" {
			t.Error("DELETE should not carry a content type")
		}
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	if err := NewClient(server.URL).DeleteTodo("123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/todos/123" {
		t.Errorf("expected /todos/123, got %s", gotPath)
	}
}

func TestGetTodo(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/42") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{"id":"42","title":"t","description":"d"}`)
	})
	defer server.Close()

	item, err := NewClient(server.URL).GetTodo("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != "42" || item.Title != "t" {
		t.Errorf("unexpected item %+v", item)
	}
}
