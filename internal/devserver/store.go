package devserver

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hy4ri/todolist-tui/internal/api"
)

var (
	// ErrNotFound is returned for an unknown id.
	ErrNotFound = errors.New("todo not found")
	// ErrInvalid is returned when title or description is blank.
	ErrInvalid = errors.New("title and description are required")
)

// Store is an in-memory todo collection that keeps insertion order.
type Store struct {
	mu    sync.RWMutex
	order []string
	items map[string]api.TodoItem
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		items: make(map[string]api.TodoItem),
	}
}

// List returns a copy of every item in insertion order.
func (s *Store) List() []api.TodoItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]api.TodoItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Get returns a single item.
func (s *Store) Get(id string) (api.TodoItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return api.TodoItem{}, ErrNotFound
	}
	return item, nil
}

// Create stores a new item under a fresh id.
func (s *Store) Create(req api.TodoRequest) (api.TodoItem, error) {
	if !req.Valid() {
		return api.TodoItem{}, ErrInvalid
	}

	item := api.TodoItem{
		ID:          strings.ReplaceAll(uuid.NewString(), "-", ""),
		Title:       req.Title,
		Description: req.Description,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return item, nil
}

// Update replaces title and description of an existing item.
func (s *Store) Update(id string, req api.TodoRequest) (api.TodoItem, error) {
	if !req.Valid() {
		return api.TodoItem{}, ErrInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return api.TodoItem{}, ErrNotFound
	}
	item.Title = req.Title
	item.Description = req.Description
	s.items[id] = item
	return item, nil
}

// Delete removes an item.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
