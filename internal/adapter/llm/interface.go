// Package llm provides an abstraction for chat model API clients.
package llm

import "context"

// ChatMessage represents a role/content pair in model context.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Model represents a model from the models list.
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// ModelClient defines the interface for chat model operations.
type ModelClient interface {
	// Chat sends the user input plus prior context to the model and returns
	// the assistant's reply. A non-nil image is attached to the current turn
	// as vision input.
	Chat(ctx context.Context, userInput string, history []ChatMessage, image []byte) (string, error)

	// ListModels retrieves the list of available models.
	ListModels(ctx context.Context) ([]Model, error)
}

// Ensure Client implements ModelClient interface.
var _ ModelClient = (*Client)(nil)
