// Package retrieval pushes ingested document chunks to the external
// retrieval index.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Document is one ingested file split into chunks.
type Document struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Chunks []string `json:"chunks"`
}

// Client delivers documents to the retrieval index over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new retrieval client. An empty baseURL disables
// delivery; IngestDocument becomes a no-op.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IngestDocument posts one document's chunks to the index.
func (c *Client) IngestDocument(ctx context.Context, doc *Document) error {
	if c.baseURL == "" {
		return nil
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/documents", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to push document to retrieval index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("retrieval index returned status %d", resp.StatusCode)
	}
	return nil
}
