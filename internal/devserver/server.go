// Package devserver is a local stand-in for the remote todo collection API.
// It serves the same four endpoints the TUI consumes, keeps items in memory
// and exposes request counters for Prometheus.
package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hy4ri/todolist-tui/internal/api"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the store, metrics and router together.
type Server struct {
	Store   *Store
	Metrics *Metrics
	logger  *log.Logger
	router  *chi.Mux
}

// New creates a server with an empty store.
func New(logger *log.Logger) *Server {
	store := NewStore()
	s := &Server{
		Store:   store,
		Metrics: NewMetrics(store),
		logger:  logger,
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.Metrics.middleware)
	r.Use(s.logRequests)

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", s.listTodos)
		r.Post("/", s.createTodo)
		r.Get("/{id}", s.getTodo)
		r.Put("/{id}", s.updateTodo)
		r.Delete("/{id}", s.deleteTodo)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}))

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", r.Header.Get(api.RequestIDHeader),
			"elapsed", time.Since(start))
	})
}

func (s *Server) listTodos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.List())
}

func (s *Server) getTodo(w http.ResponseWriter, r *http.Request) {
	item, err := s.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) createTodo(w http.ResponseWriter, r *http.Request) {
	var req api.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	item, err := s.Store.Create(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) updateTodo(w http.ResponseWriter, r *http.Request) {
	var req api.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	item, err := s.Store.Update(chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) deleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
