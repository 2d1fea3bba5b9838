package llm

import (
	"context"

	"github.com/razeenr05/GenVis/internal/domain"
)

// mockMarker prefixes every fallback response so callers and tests can tell
// a degraded answer from a real one.
const mockMarker = "[Mock AI Response based on: "

const mockEchoLimit = 120

var mockReasoningSteps = []string{
	"Step 1: Analyzing user input and context",
	"Step 2: Breaking down task into subtasks",
	"Step 3: Generating structured output",
}

// mockResult builds the deterministic substitute response: a pure function
// of the first 120 characters of the prompt.
func mockResult(prompt string) domain.LLMResult {
	echo := prompt
	if runes := []rune(prompt); len(runes) > mockEchoLimit {
		echo = string(runes[:mockEchoLimit])
	}

	trace := make([]string, len(mockReasoningSteps))
	copy(trace, mockReasoningSteps)

	return domain.LLMResult{
		Content:        mockMarker + echo + "...]",
		ReasoningTrace: trace,
	}
}

// MockClient always answers with the mock result. Used in local dev mode and
// in tests, the same way the real client degrades when the endpoint is
// unreachable.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, prompt string, maxTokens int) domain.LLMResult {
	return mockResult(prompt)
}
