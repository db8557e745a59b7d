package retrieval

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIngestDocument(t *testing.T) {
	var got Document
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/documents" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode document failed: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.IngestDocument(context.Background(), &Document{
		ID:     "d1",
		Name:   "guide.pdf",
		Chunks: []string{"first chunk", "second chunk"},
	})
	if err != nil {
		t.Fatalf("IngestDocument failed: %v", err)
	}
	if got.ID != "d1" || len(got.Chunks) != 2 {
		t.Fatalf("unexpected document: %+v", got)
	}
}

func TestClientIngestDocumentNoURL(t *testing.T) {
	client := NewClient("")
	if err := client.IngestDocument(context.Background(), &Document{ID: "d1"}); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}
