package transcribe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientTranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart failed: %v", err)
		}
		if r.FormValue("model") != "whisper-1" {
			t.Fatalf("unexpected model field: %q", r.FormValue("model"))
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file field: %v", err)
		}
		defer file.Close()
		if header.Filename != "note.wav" {
			t.Fatalf("unexpected filename: %q", header.Filename)
		}
		data, err := io.ReadAll(file)
		if err != nil || len(data) != 4 {
			t.Fatalf("unexpected audio payload: %v %d", err, len(data))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"text":"hello world"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "whisper-1", time.Second)
	text, err := client.Transcribe(context.Background(), []byte{1, 2, 3, 4}, "note.wav")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestClientTranscribeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "whisper-1", time.Second)
	if _, err := client.Transcribe(context.Background(), []byte{1}, ""); err == nil {
		t.Fatalf("expected error")
	}
}
