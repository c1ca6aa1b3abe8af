package agent

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apierrors "github.com/diogo/agentchat/internal/errors"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("")
	if c.Endpoint() != "http://localhost:8000" {
		t.Errorf("Expected default endpoint, got %q", c.Endpoint())
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://localhost:9000/")
	if c.Endpoint() != "http://localhost:9000" {
		t.Errorf("Expected trimmed endpoint, got %q", c.Endpoint())
	}
}

func TestNewClient_WithTimeout(t *testing.T) {
	c := NewClient("", WithTimeout(5*time.Second))
	if c.httpClient.Timeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", c.httpClient.Timeout)
	}
}

func TestRunTask_Success(t *testing.T) {
	var gotBody string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/run_task" {
			t.Errorf("Expected path /run_task, got %s", r.URL.Path)
		}
		gotContentType = r.Header.Get("Content-Type")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"done"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	result, err := c.RunTask(context.Background(), "open example.com")
	if err != nil {
		t.Fatalf("RunTask() returned error: %v", err)
	}
	if result != "done" {
		t.Errorf("RunTask() = %q, want 'done'", result)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotBody != `{"task":"open example.com"}` {
		t.Errorf("Request body = %s", gotBody)
	}
}

func TestRunTask_TrimsTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		if string(buf) != `{"task":"hello"}` {
			t.Errorf("Request body = %s, want trimmed task", buf)
		}
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if _, err := c.RunTask(context.Background(), "  hello  "); err != nil {
		t.Fatalf("RunTask() returned error: %v", err)
	}
}

func TestRunTask_EmptyTask(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	c := NewClient(server.URL)
	for _, task := range []string{"", "   ", "\n\t"} {
		if _, err := c.RunTask(context.Background(), task); !errors.Is(err, apierrors.ErrEmptyTask) {
			t.Errorf("RunTask(%q) error = %v, want ErrEmptyTask", task, err)
		}
	}
	if called {
		t.Error("Empty task should never reach the server")
	}
}

func TestRunTask_EmptyResult(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing result field", `{}`},
		{"null result", `{"result":null}`},
		{"empty result", `{"result":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(server.URL)
			result, err := c.RunTask(context.Background(), "task")
			if err != nil {
				t.Fatalf("RunTask() returned error: %v", err)
			}
			if result != "" {
				t.Errorf("RunTask() = %q, want empty", result)
			}
		})
	}
}

func TestRunTask_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"task failed"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.RunTask(context.Background(), "task")
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
	if !apierrors.IsAPIError(err) {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if got := apierrors.GetHTTPStatus(err); got != 500 {
		t.Errorf("GetHTTPStatus() = %d, want 500", got)
	}
	if got := apierrors.GetDetail(err); got != "task failed" {
		t.Errorf("GetDetail() = %q, want 'task failed'", got)
	}
}

func TestRunTask_APIError_NoDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.RunTask(context.Background(), "task")
	if !apierrors.IsAPIError(err) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if got := apierrors.GetDetail(err); got != "" {
		t.Errorf("GetDetail() = %q, want empty for non-JSON body", got)
	}
	if got := apierrors.GetHTTPStatus(err); got != 502 {
		t.Errorf("GetHTTPStatus() = %d, want 502", got)
	}
}

func TestRunTask_NetworkError(t *testing.T) {
	// Point at a closed server to force a connection failure
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewClient(server.URL)
	_, err := c.RunTask(context.Background(), "task")
	if err == nil {
		t.Fatal("Expected error for unreachable server")
	}
	if !apierrors.IsNetworkError(err) {
		t.Errorf("Expected NetworkError, got %T: %v", err, err)
	}
}

func TestRunTask_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(server.URL)
	_, err := c.RunTask(ctx, "task")
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}
	if !apierrors.IsNetworkError(err) {
		t.Errorf("Expected NetworkError, got %T", err)
	}
}

func TestPing_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			t.Errorf("Expected path /, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"message":"Browser Agent API is running."}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping() returned error: %v", err)
	}
}

func TestPing_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	err := c.Ping(context.Background())
	if !apierrors.IsAPIError(err) {
		t.Errorf("Expected APIError, got %v", err)
	}
}

func TestPing_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewClient(server.URL)
	err := c.Ping(context.Background())
	if !apierrors.IsNetworkError(err) {
		t.Errorf("Expected NetworkError, got %v", err)
	}
}
