package commands

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apierrors "github.com/diogo/agentchat/internal/errors"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"chat", "config"} {
		if !names[want] {
			t.Errorf("Expected subcommand %q to be registered", want)
		}
	}
}

func TestRootCommand_Flags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("endpoint") == nil {
		t.Error("Expected persistent --endpoint flag")
	}
	for _, name := range []string{"output", "file", "version"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag", name)
		}
	}
}

func TestGetEndpoint_FlagWins(t *testing.T) {
	old := endpointFlag
	defer func() { endpointFlag = old }()

	endpointFlag = "http://localhost:9000"
	if got := getEndpoint(); got != "http://localhost:9000" {
		t.Errorf("getEndpoint() = %q, want flag value", got)
	}
}

func TestGetEndpoint_DefaultWithoutFlag(t *testing.T) {
	old := endpointFlag
	defer func() { endpointFlag = old }()
	t.Setenv("HOME", t.TempDir())

	endpointFlag = ""
	if got := getEndpoint(); got != "http://localhost:8000" {
		t.Errorf("getEndpoint() = %q, want default", got)
	}
}

func TestRunQuery_EmptyTask(t *testing.T) {
	for _, task := range []string{"", "   ", "\n"} {
		if err := runQuery(task, true); err == nil {
			t.Errorf("runQuery(%q) expected error", task)
		}
	}
}

func TestRunQuery_CorruptConfigFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".agentchat")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	oldEndpoint := endpointFlag
	oldOutput := outputFlag
	defer func() {
		endpointFlag = oldEndpoint
		outputFlag = oldOutput
	}()
	endpointFlag = server.URL
	outputFlag = filepath.Join(home, "out.txt")

	// A corrupt config file warns but must not fail the query
	if err := runQuery("task", true); err != nil {
		t.Fatalf("runQuery() returned error: %v", err)
	}

	data, err := os.ReadFile(outputFlag)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(data) != "ok" {
		t.Errorf("Output file = %q, want 'ok'", data)
	}
}

func TestFormatErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "nil error",
			err:      nil,
			contains: nil,
		},
		{
			name:     "api error with detail",
			err:      apierrors.NewAPIError(500, "http://localhost:8000/run_task", "task failed"),
			contains: []string{"task failed", "HTTP Status: 500", "Endpoint: http://localhost:8000/run_task"},
		},
		{
			name:     "network error hint",
			err:      apierrors.NewNetworkError("run task", "http://localhost:8000/run_task", errors.New("refused")),
			contains: []string{"Failed to get response from agent.", "agent API server is running"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorMessage(tt.err, "Task failed")
			if tt.err == nil {
				if got != "" {
					t.Errorf("Expected empty string for nil error, got %q", got)
				}
				return
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("formatErrorMessage() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}
