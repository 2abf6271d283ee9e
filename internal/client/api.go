// Package client holds the presentation-side state of the portfolio: the API
// client, the two-tier project catalog, the image carousel, the category
// filter and the contact form lifecycle.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/portfolio/backend/internal/model"
)

const defaultHTTPTimeout = 10 * time.Second

// APIError is a non-success response from the portfolio API.
// Message is the server-provided text and may be empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// envelope is the {success, message, count, data} body every endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// APIClient talks to the portfolio HTTP API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for baseURL (e.g. "http://localhost:5000").
// A nil httpClient gets a client with a 10s timeout.
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// ListProjects fetches GET /api/projects.
func (c *APIClient) ListProjects(ctx context.Context) ([]*model.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/projects", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	env, err := c.do(req, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var projects []*model.Project
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &projects); err != nil {
			return nil, fmt.Errorf("decode projects: %w", err)
		}
	}
	return projects, nil
}

// SubmitContact posts the form to POST /api/contact and returns the server's
// confirmation message.
func (c *APIClient) SubmitContact(ctx context.Context, fields ContactFields) (string, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode contact: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	env, err := c.do(req, http.StatusCreated)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *APIClient) do(req *http.Request, wantStatus int) (*envelope, error) {
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)
	if resp.StatusCode != wantStatus || !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return &env, nil
}
