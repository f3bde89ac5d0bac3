// Package api provides a client for a remote todo collection REST API.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TodoItem represents a todo item as stored by the server.
// The server owns the ID; the client never invents one.
type TodoItem struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UnmarshalJSON accepts either "_id" or "id", as a string or a number.
func (t *TodoItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		MongoID     json.RawMessage `json:"_id"`
		ID          json.RawMessage `json:"id"`
		Title       string          `json:"title"`
		Description string          `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	idField := raw.MongoID
	if len(idField) == 0 || string(idField) == "null" {
		idField = raw.ID
	}

	id, err := parseID(idField)
	if err != nil {
		return err
	}

	t.ID = id
	t.Title = raw.Title
	t.Description = raw.Description
	return nil
}

func parseID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("invalid id: %w", err)
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("invalid id %s: %w", string(raw), err)
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}

// TodoRequest is the body sent on create and update. Update is a full replace.
type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Valid reports whether both fields are non-empty after trimming whitespace.
func (r TodoRequest) Valid() bool {
	return strings.TrimSpace(r.Title) != "" && strings.TrimSpace(r.Description) != ""
}
