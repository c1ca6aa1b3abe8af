// Package models contains data types and constants for the agent API client.
package models

// Defaults for the agent API server
const (
	// DefaultEndpoint is the base URL of the local agent API server.
	DefaultEndpoint = "http://localhost:8000"

	// PathRunTask is the task execution route.
	PathRunTask = "/run_task"

	// PathRoot is the health probe route.
	PathRoot = "/"
)

// Fixed UI strings
const (
	// EmptyResultPlaceholder is shown when the server succeeds but
	// returns no result text.
	EmptyResultPlaceholder = "Agent returned no result."

	// GenericFailureMessage is shown when a call fails without any
	// server-supplied detail or HTTP status to report.
	GenericFailureMessage = "Failed to get response from agent."

	// ErrorPrefix prepends every agent-side error message in the chat.
	ErrorPrefix = "Error: "
)
