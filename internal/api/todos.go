package api

import (
	"fmt"
	"net/http"
	"net/url"
)

const todosPath = "/todos"

func todoPath(id string) string {
	return todosPath + "/" + url.PathEscape(id)
}

// GetTodos returns the whole collection in server order.
// The payload must match the list schema; a mismatch is reported as ErrInvalidPayload.
func (c *Client) GetTodos() ([]TodoItem, error) {
	body, err := c.do(http.MethodGet, todosPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	if err := ValidateTodoList(body); err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	todos := make([]TodoItem, 0)
	if err := decode(body, &todos); err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}
	return todos, nil
}

// GetTodo returns a single item by ID.
func (c *Client) GetTodo(id string) (*TodoItem, error) {
	var item TodoItem
	if err := c.Get(todoPath(id), &item); err != nil {
		return nil, fmt.Errorf("failed to get todo %s: %w", id, err)
	}
	return &item, nil
}

// CreateTodo creates a new item. Any 2xx answer counts as success; the body
// is only read for the new item when it looks like one, otherwise the
// returned item is empty.
func (c *Client) CreateTodo(req TodoRequest) (*TodoItem, error) {
	body, err := c.do(http.MethodPost, todosPath, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return c.acknowledgedItem(body), nil
}

// UpdateTodo replaces the title and description of an existing item.
// As with CreateTodo, the response body does not decide success.
func (c *Client) UpdateTodo(id string, req TodoRequest) (*TodoItem, error) {
	body, err := c.do(http.MethodPut, todoPath(id), req)
	if err != nil {
		return nil, fmt.Errorf("failed to update todo %s: %w", id, err)
	}
	return c.acknowledgedItem(body), nil
}

// acknowledgedItem decodes a write response leniently. Servers answer writes
// with the item, a status string, a bare boolean or nothing at all.
func (c *Client) acknowledgedItem(body []byte) *TodoItem {
	var item TodoItem
	if err := decode(body, &item); err != nil {
		c.logger.Debug("ignoring write response body", "err", err)
		return &TodoItem{}
	}
	return &item
}

// DeleteTodo deletes an item.
func (c *Client) DeleteTodo(id string) error {
	if err := c.Delete(todoPath(id)); err != nil {
		return fmt.Errorf("failed to delete todo %s: %w", id, err)
	}
	return nil
}
