package agent

import "context"

// MockClient is a mock implementation of ClientInterface for testing
type MockClient struct {
	// Mock return values
	RunTaskVal  string
	RunTaskErr  error
	PingErr     error
	EndpointVal string

	// Call counters/recorders
	RunTaskCalls int
	PingCalled   bool
	LastTask     string
}

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

func (m *MockClient) RunTask(ctx context.Context, task string) (string, error) {
	m.RunTaskCalls++
	m.LastTask = task
	return m.RunTaskVal, m.RunTaskErr
}

func (m *MockClient) Ping(ctx context.Context) error {
	m.PingCalled = true
	return m.PingErr
}

func (m *MockClient) Endpoint() string {
	if m.EndpointVal != "" {
		return m.EndpointVal
	}
	return "http://localhost:8000"
}
