package llm

import (
	"context"
	"sync"

	"github.com/Harshitk-cp/guestchat/internal/domain"
)

// GenerateCall records the arguments of one Generate call.
type GenerateCall struct {
	Prompt  string
	Options domain.GenerateOptions
}

// mockMaxCalls bounds the recorded history when the mock serves real traffic.
const mockMaxCalls = 100

// MockClient is a configurable LLM client for testing and local runs.
// Set Response or Error to control what Generate returns.
type MockClient struct {
	Response string
	Error    error

	mu    sync.Mutex
	calls []GenerateCall
}

func NewMockClient() *MockClient {
	return &MockClient{Response: "Mock reply"}
}

func (c *MockClient) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.calls) == mockMaxCalls {
		c.calls = append(c.calls[:0], c.calls[1:]...)
	}
	c.calls = append(c.calls, GenerateCall{Prompt: prompt, Options: opts})
	if c.Error != nil {
		return "", c.Error
	}
	return c.Response, nil
}

// Calls returns a copy of the most recent recorded calls, oldest first.
func (c *MockClient) Calls() []GenerateCall {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]GenerateCall, len(c.calls))
	copy(out, c.calls)
	return out
}

// Reset clears recorded calls and restores the default response.
func (c *MockClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Response = "Mock reply"
	c.Error = nil
	c.calls = nil
}
