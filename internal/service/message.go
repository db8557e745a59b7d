package service

import (
	"context"
	"fmt"

	"github.com/kexin8/multichat/internal/adapter/llm"
	"github.com/kexin8/multichat/internal/domain"
	"github.com/kexin8/multichat/internal/policy"
)

// AppendTurn validates a message, runs it through the append-admission
// policy, and persists it. Returns the new message id.
func (s *Service) AppendTurn(ctx context.Context, sessionID string, role domain.Role, modality domain.Modality, text string, blob []byte) (int64, error) {
	msg := &domain.Message{
		SessionID: sessionID,
		Role:      role,
		Modality:  modality,
		Text:      text,
		Blob:      blob,
	}
	if err := msg.Validate(); err != nil {
		return 0, err
	}

	payloadBytes := len(text)
	if modality.Binary() {
		payloadBytes = len(blob)
	}
	decision, err := s.policy.Evaluate(ctx, policy.Input{
		Role:         string(role),
		Modality:     string(modality),
		PayloadBytes: payloadBytes,
		MaxBlobBytes: s.config.MaxBlobBytes,
	})
	if err != nil {
		return 0, fmt.Errorf("policy evaluation failed: %w", err)
	}
	if decision != policy.DecisionAllow {
		return 0, domain.ErrPolicyBlocked
	}

	id, err := s.store.AppendMessage(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("failed to append message: %w", err)
	}
	return id, nil
}

// History returns the full ordered message log of a session, all modalities
// included.
func (s *Service) History(ctx context.Context, sessionID string) ([]domain.Message, error) {
	messages, err := s.store.GetMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return messages, nil
}

// ContextWindow rebuilds the model-ready role/content sequence from the last
// k text messages of a session. Image and audio turns never enter context.
func (s *Service) ContextWindow(ctx context.Context, sessionID string, k int) ([]llm.ChatMessage, error) {
	messages, err := s.store.GetRecentTextMessages(ctx, sessionID, k)
	if err != nil {
		return nil, fmt.Errorf("failed to load context window: %w", err)
	}

	window := make([]llm.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		window = append(window, llm.ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Text,
		})
	}
	return window, nil
}

// ListSessions returns all registry entries in creation order.
func (s *Service) ListSessions(ctx context.Context) ([]domain.SessionInfo, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession destroys a session and all its messages. If the deleted id is
// the currently bound one, the active-session selector returns to NEW.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.sessions.HandleDeleted(sessionID)
	return nil
}

// StartNewSession resets the active-session selector; the next turn mints a
// fresh session id.
func (s *Service) StartNewSession() {
	s.sessions.Reset()
}
