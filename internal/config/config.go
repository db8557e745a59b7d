// Package config provides environment-derived configuration for the chat
// service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the chat service configuration.
type Config struct {
	// Server settings
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Database
	DatabasePath string `env:"DATABASE_PATH" envDefault:"chat_sessions.db"`

	// Chat behavior
	ChatMemoryLength int `env:"CHAT_MEMORY_LENGTH" envDefault:"6"`
	MaxBlobBytes     int `env:"MAX_BLOB_BYTES" envDefault:"10485760"`

	// Model endpoint
	ModelBaseURL string        `env:"MODEL_BASE_URL" envDefault:"http://localhost:11434"`
	ModelAPIKey  string        `env:"MODEL_API_KEY"`
	ModelName    string        `env:"MODEL_NAME" envDefault:"llama3"`
	ModelTimeout time.Duration `env:"MODEL_TIMEOUT" envDefault:"120s"`

	// Transcription endpoint
	TranscribeBaseURL string        `env:"TRANSCRIBE_BASE_URL" envDefault:"http://localhost:11434"`
	TranscribeModel   string        `env:"TRANSCRIBE_MODEL" envDefault:"whisper-1"`
	TranscribeTimeout time.Duration `env:"TRANSCRIBE_TIMEOUT" envDefault:"120s"`

	// Retrieval index; empty disables document delivery
	RetrievalBaseURL string `env:"RETRIEVAL_URL"`

	// Ingestion chunking
	ChunkSize    int `env:"CHUNK_SIZE" envDefault:"1000"`
	ChunkOverlap int `env:"CHUNK_OVERLAP" envDefault:"100"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
