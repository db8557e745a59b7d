package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientChat(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request failed: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"llama3","choices":[{"index":0,"message":{"role":"assistant","content":"hi there"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "llama3", time.Second)
	answer, err := client.Chat(context.Background(), "hello", []ChatMessage{
		{Role: "user", Content: "earlier"},
		{Role: "assistant", Content: "noted"},
	}, nil)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if answer != "hi there" {
		t.Fatalf("unexpected answer: %q", answer)
	}

	messages, ok := gotBody["messages"].([]any)
	if !ok || len(messages) != 3 {
		t.Fatalf("unexpected messages payload: %+v", gotBody["messages"])
	}
	last := messages[2].(map[string]any)
	if last["role"] != "user" || last["content"] != "hello" {
		t.Fatalf("unexpected final message: %+v", last)
	}
}

func TestClientChatWithImage(t *testing.T) {
	var raw []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body failed: %v", err)
		}
		raw = body
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c2","object":"chat.completion","created":1,"model":"llama3","choices":[{"index":0,"message":{"role":"assistant","content":"a cat"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "llama3", time.Second)
	answer, err := client.Chat(context.Background(), "what is this?", nil, []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if answer != "a cat" {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if !strings.Contains(string(raw), "image_url") || !strings.Contains(string(raw), "base64") {
		t.Fatalf("expected vision content parts in request body: %s", raw)
	}
}

func TestClientChatError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"bad","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "llama3", time.Second)
	if _, err := client.Chat(context.Background(), "hello", nil, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestClientListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"object":"list","data":[{"id":"llama3","object":"model","owned_by":"library"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "llama3", time.Second)
	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}
	if len(models) != 1 || models[0].ID != "llama3" {
		t.Fatalf("unexpected models: %+v", models)
	}
}

func TestMockClientChat(t *testing.T) {
	client := NewMockClient()
	answer, err := client.Chat(context.Background(), "ping", nil, nil)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if answer == "" {
		t.Fatalf("expected non-empty answer")
	}
}
