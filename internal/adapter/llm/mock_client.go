package llm

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of ModelClient for testing and for
// running the service without a model endpoint.
type MockClient struct{}

// NewMockClient creates a new mock model client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements ModelClient interface.
var _ ModelClient = (*MockClient)(nil)

// Chat returns a canned reply derived from the input.
func (m *MockClient) Chat(ctx context.Context, userInput string, history []ChatMessage, image []byte) (string, error) {
	if image != nil {
		return "I received an image.", nil
	}
	return fmt.Sprintf("Echo: %s", userInput), nil
}

// ListModels returns a list of mock models.
func (m *MockClient) ListModels(ctx context.Context) ([]Model, error) {
	return []Model{
		{ID: "mock-chat", Object: "model", OwnedBy: "mock"},
	}, nil
}
