package llm

import (
	"context"
	"strings"
)

// MockLLM is a deterministic LLM implementation for testing.
// Responses are returned in order, one per Complete call; the final
// response repeats once the queue is exhausted.
type MockLLM struct {
	// Responses are returned in sequence by Complete.
	Responses []string

	// Err, if set, is returned by Complete instead of a response.
	Err error

	// Calls records the message turns of every Complete invocation.
	Calls [][]Message

	next int
}

// NewMockLLM creates a mock LLM with the given queued responses.
func NewMockLLM(responses ...string) *MockLLM {
	return &MockLLM{Responses: responses}
}

// NewMockLLMWithError creates a mock LLM that always fails.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Err: err}
}

// Complete returns the next queued response, echoing the prompt when
// no responses were configured.
func (m *MockLLM) Complete(ctx context.Context, messages []Message) (string, error) {
	m.Calls = append(m.Calls, messages)

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "mock: " + lastContent(messages), nil
	}
	resp := m.Responses[min(m.next, len(m.Responses)-1)]
	m.next++
	return resp, nil
}

// CallCount reports how many times Complete was invoked.
func (m *MockLLM) CallCount() int { return len(m.Calls) }

// LastPrompt returns the content of the final message of the most
// recent call, or empty if the mock was never invoked.
func (m *MockLLM) LastPrompt() string {
	if len(m.Calls) == 0 {
		return ""
	}
	return lastContent(m.Calls[len(m.Calls)-1])
}

func lastContent(messages []Message) string {
	if len(messages) == 0 {
		return ""
	}
	return strings.TrimSpace(messages[len(messages)-1].Content)
}
