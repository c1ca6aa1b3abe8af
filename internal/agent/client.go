// Package agent provides the HTTP client for the browser agent API.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/agentchat/internal/errors"
	"github.com/diogo/agentchat/internal/models"
)

// ClientInterface defines the agent API operations consumed by the TUI
// and the CLI commands.
type ClientInterface interface {
	// RunTask submits a task to the agent and returns the result text.
	// The result may be empty when the server returned none.
	RunTask(ctx context.Context, task string) (string, error)

	// Ping checks that the agent server is reachable.
	Ping(ctx context.Context) error

	// Endpoint returns the base URL the client talks to.
	Endpoint() string
}

// Client is the HTTP client for the agent API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets a request timeout on the underlying HTTP client.
// The default is no timeout; agent tasks can run for minutes.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new agent API client. An empty baseURL falls back
// to the default local endpoint.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = models.DefaultEndpoint
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Endpoint returns the base URL the client talks to.
func (c *Client) Endpoint() string {
	return c.baseURL
}

// taskRequest is the run_task request body.
type taskRequest struct {
	Task string `json:"task"`
}

// RunTask submits a task to the agent server and returns the result
// text. Network failures become NetworkError; non-success responses
// become APIError carrying the server's detail field when present.
func (c *Client) RunTask(ctx context.Context, task string) (string, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return "", apierrors.ErrEmptyTask
	}

	endpoint := c.baseURL + models.PathRunTask

	payload, err := json.Marshal(taskRequest{Task: task})
	if err != nil {
		return "", fmt.Errorf("failed to encode task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError("run task", endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkError("read response", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// FastAPI wraps HTTPException messages in a "detail" field.
		detail := gjson.GetBytes(body, "detail").String()
		return "", apierrors.NewAPIError(resp.StatusCode, endpoint, detail)
	}

	return gjson.GetBytes(body, "result").String(), nil
}

// Ping checks that the agent server is reachable and answering on its
// health route.
func (c *Client) Ping(ctx context.Context) error {
	endpoint := c.baseURL + models.PathRoot

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierrors.NewNetworkError("ping", endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apierrors.NewAPIError(resp.StatusCode, endpoint, "")
	}

	return nil
}
