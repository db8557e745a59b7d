package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kexin8/multichat/internal/adapter/retrieval"
	"github.com/kexin8/multichat/internal/ingest"
)

// UploadedFile is one file received from the UI for ingestion.
type UploadedFile struct {
	Name string
	Data []byte
}

// IngestDocuments extracts text from the uploaded PDFs, chunks it, and pushes
// the chunks to the retrieval index.
func (s *Service) IngestDocuments(ctx context.Context, files []UploadedFile) error {
	for _, f := range files {
		text, err := ingest.ExtractText(f.Data)
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", f.Name, err)
		}

		chunks := ingest.Chunk(text, s.config.ChunkSize, s.config.ChunkOverlap)
		if len(chunks) == 0 {
			continue
		}

		doc := &retrieval.Document{
			ID:     uuid.New().String(),
			Name:   f.Name,
			Chunks: chunks,
		}
		if err := s.documents.IngestDocument(ctx, doc); err != nil {
			return fmt.Errorf("failed to ingest %s: %w", f.Name, err)
		}
	}
	return nil
}
