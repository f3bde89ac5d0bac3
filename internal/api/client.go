package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the hosted todo backend the client talks to when no
	// base URL is configured.
	DefaultBaseURL = "https://todo-backend-awza.onrender.com"

	// RequestIDHeader carries a per-request id that also appears in log lines.
	RequestIDHeader = "X-Request-ID"
)

// Client talks to a remote todo collection endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a new client for the collection rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetHTTPClient allows overriding the default HTTP client (useful for testing).
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// do performs an HTTP request and returns the raw response body.
func (c *Client) do(method, path string, body interface{}) ([]byte, error) {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start))

	// Anything outside 2xx is a failure, including redirects the client did not follow.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(respBody)),
			RequestID:  requestID,
		}
	}

	return respBody, nil
}

// decode unmarshals body into result when both are present.
func decode(body []byte, result interface{}) error {
	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Get performs a GET request.
func (c *Client) Get(path string, result interface{}) error {
	body, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(body, result)
}

// Post performs a POST request.
func (c *Client) Post(path string, body interface{}, result interface{}) error {
	respBody, err := c.do(http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decode(respBody, result)
}

// Put performs a PUT request.
func (c *Client) Put(path string, body interface{}, result interface{}) error {
	respBody, err := c.do(http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decode(respBody, result)
}

// Delete performs a DELETE request.
func (c *Client) Delete(path string) error {
	_, err := c.do(http.MethodDelete, path, nil)
	return err
}
