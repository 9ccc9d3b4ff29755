// Package client talks to the HealthTech server REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/healthtech/healthtech/pkg/types"
)

const defaultTimeout = 10 * time.Second

// Submission is the server's response to a submitted reading.
type Submission struct {
	Record     types.HealthRecord `json:"record"`
	Assessment types.Assessment   `json:"assessment"`
	Insights   []string           `json:"insights"`
	Chart      types.Chart        `json:"chart"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("server returned HTTP %d: %s", e.Status, e.Message)
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + " " + e.Fields[name]
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(parts, "; "))
}

// Client is a small REST client for one server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the server at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Submit posts r to the server, which records it in the session log.
func (c *Client) Submit(ctx context.Context, r types.Reading) (*Submission, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode reading: %w", err)
	}
	var out Submission
	if err := c.do(ctx, http.MethodPost, "/api/v1/readings", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Snapshot fetches every record of the session plus the daily summary.
func (c *Client) Snapshot(ctx context.Context) (*types.Snapshot, error) {
	var out types.Snapshot
	if err := c.do(ctx, http.MethodGet, "/api/v1/snapshot", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var payload struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
			apiErr.Fields = payload.Fields
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
