// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"github.com/kexin8/multichat/internal/domain"
)

// Store defines the interface for conversation persistence.
type Store interface {
	// Message log operations
	AppendMessage(ctx context.Context, message *domain.Message) (int64, error)
	GetMessages(ctx context.Context, sessionID string) ([]domain.Message, error)
	GetRecentTextMessages(ctx context.Context, sessionID string, k int) ([]domain.Message, error)

	// Session registry operations
	ListSessions(ctx context.Context) ([]domain.SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Lifecycle
	Close() error
}
