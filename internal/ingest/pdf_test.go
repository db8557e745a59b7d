package ingest

import (
	"strings"
	"testing"
)

func TestChunk(t *testing.T) {
	chunks := Chunk("abcdefghij", 4, 1)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != "abcd" || chunks[1] != "defg" || chunks[2] != "ghij" {
		t.Fatalf("unexpected chunks: %v", chunks)
	}
}

func TestChunkShortText(t *testing.T) {
	chunks := Chunk("abc", 100, 10)
	if len(chunks) != 1 || chunks[0] != "abc" {
		t.Fatalf("unexpected chunks: %v", chunks)
	}
}

func TestChunkEmpty(t *testing.T) {
	if chunks := Chunk("", 10, 2); chunks != nil {
		t.Fatalf("expected nil for empty text, got %v", chunks)
	}
	if chunks := Chunk("abc", 0, 0); chunks != nil {
		t.Fatalf("expected nil for zero size, got %v", chunks)
	}
}

func TestChunkNoRuneSplit(t *testing.T) {
	text := strings.Repeat("héllo ", 10)
	for _, c := range Chunk(text, 7, 2) {
		if strings.ContainsRune(c, '�') {
			t.Fatalf("chunk split a rune: %q", c)
		}
	}
}

func TestExtractTextRejectsGarbage(t *testing.T) {
	if _, err := ExtractText([]byte("not a pdf")); err == nil {
		t.Fatalf("expected error for non-pdf input")
	}
}
