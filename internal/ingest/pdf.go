// Package ingest extracts text from uploaded PDFs for the retrieval index.
package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"rsc.io/pdf"
)

// ExtractText extracts the plain text of a PDF document.
func ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, text := range page.Content().Text {
			buf.WriteString(text.S)
			buf.WriteString(" ")
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

// Chunk splits text into overlapping rune windows for indexing. size must be
// positive; overlap smaller than size.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 || text == "" {
		return nil
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(text)
	step := size - overlap

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
