// Package service orchestrates conversation persistence, model calls, and
// document ingestion.
package service

import (
	"context"

	"github.com/kexin8/multichat/internal/adapter/llm"
	"github.com/kexin8/multichat/internal/adapter/retrieval"
	"github.com/kexin8/multichat/internal/config"
	"github.com/kexin8/multichat/internal/policy"
	"github.com/kexin8/multichat/internal/store"
)

// Transcriber converts audio bytes to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// DocumentSink receives ingested documents for the retrieval index.
type DocumentSink interface {
	IngestDocument(ctx context.Context, doc *retrieval.Document) error
}

// Service wires the store, the model client, and the collaborators together.
type Service struct {
	store       store.Store
	model       llm.ModelClient
	transcriber Transcriber
	documents   DocumentSink
	policy      *policy.Engine
	sessions    *SessionController
	config      *config.Config
}

// New creates a new service.
func New(st store.Store, model llm.ModelClient, transcriber Transcriber, documents DocumentSink, policyEngine *policy.Engine, cfg *config.Config) *Service {
	return &Service{
		store:       st,
		model:       model,
		transcriber: transcriber,
		documents:   documents,
		policy:      policyEngine,
		sessions:    NewSessionController(),
		config:      cfg,
	}
}

// Sessions returns the active-session controller.
func (s *Service) Sessions() *SessionController {
	return s.sessions
}

// MemoryLength returns the configured context window bound.
func (s *Service) MemoryLength() int {
	return s.config.ChatMemoryLength
}
