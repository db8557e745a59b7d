package service

import (
	"context"
	"fmt"

	"github.com/kexin8/multichat/internal/adapter/llm"
	"github.com/kexin8/multichat/internal/domain"
)

// ImageCaptionText is recorded as the user's text turn alongside an image
// upload, and becomes the session label when the image opens a new session.
const ImageCaptionText = "Image uploaded"

// TurnResult describes one completed chat round-trip.
type TurnResult struct {
	SessionID          string `json:"session_id"`
	Answer             string `json:"answer"`
	UserMessageID      int64  `json:"user_message_id"`
	AssistantMessageID int64  `json:"assistant_message_id,omitempty"`
}

// SendText runs one text round-trip: persist the user's turn, call the model
// over the prior text context, persist the reply. A failed model call leaves
// the user's turn in the log and returns ErrGenerationFailed.
func (s *Service) SendText(ctx context.Context, requestedSession, text string) (*TurnResult, error) {
	sessionID := s.ResolveSessionID(requestedSession)

	// Snapshot context before appending so the current input is not
	// duplicated: it is passed to the model as the current turn.
	history, err := s.ContextWindow(ctx, sessionID, s.config.ChatMemoryLength)
	if err != nil {
		return nil, err
	}

	userID, err := s.AppendTurn(ctx, sessionID, domain.RoleUser, domain.ModalityText, text, nil)
	if err != nil {
		return nil, err
	}

	answer, err := s.model.Chat(ctx, text, history, nil)
	if err != nil {
		return &TurnResult{SessionID: sessionID, UserMessageID: userID},
			fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	assistantID, err := s.AppendTurn(ctx, sessionID, domain.RoleAssistant, domain.ModalityText, answer, nil)
	if err != nil {
		return nil, err
	}

	return &TurnResult{
		SessionID:          sessionID,
		Answer:             answer,
		UserMessageID:      userID,
		AssistantMessageID: assistantID,
	}, nil
}

// SendAudio transcribes the recording, persists the audio turn, and runs the
// transcription as the current text input over the session's text context.
func (s *Service) SendAudio(ctx context.Context, requestedSession string, audio []byte, filename string) (*TurnResult, string, error) {
	sessionID := s.ResolveSessionID(requestedSession)

	transcription, err := s.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, "", fmt.Errorf("transcription failed: %w", err)
	}

	history, err := s.ContextWindow(ctx, sessionID, s.config.ChatMemoryLength)
	if err != nil {
		return nil, "", err
	}

	userID, err := s.AppendTurn(ctx, sessionID, domain.RoleUser, domain.ModalityAudio, "", audio)
	if err != nil {
		return nil, "", err
	}

	answer, err := s.model.Chat(ctx, transcription, history, nil)
	if err != nil {
		return &TurnResult{SessionID: sessionID, UserMessageID: userID}, transcription,
			fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	assistantID, err := s.AppendTurn(ctx, sessionID, domain.RoleAssistant, domain.ModalityText, answer, nil)
	if err != nil {
		return nil, transcription, err
	}

	return &TurnResult{
		SessionID:          sessionID,
		Answer:             answer,
		UserMessageID:      userID,
		AssistantMessageID: assistantID,
	}, transcription, nil
}

// SendImage persists a caption turn plus the image blob, then asks the model
// about the image. Image turns are stored for display only; they never enter
// later context windows.
func (s *Service) SendImage(ctx context.Context, requestedSession, caption string, image []byte) (*TurnResult, error) {
	sessionID := s.ResolveSessionID(requestedSession)

	if caption == "" {
		caption = ImageCaptionText
	}

	userID, err := s.AppendTurn(ctx, sessionID, domain.RoleUser, domain.ModalityText, caption, nil)
	if err != nil {
		return nil, err
	}
	if _, err := s.AppendTurn(ctx, sessionID, domain.RoleUser, domain.ModalityImage, "", image); err != nil {
		return nil, err
	}

	answer, err := s.model.Chat(ctx, caption, nil, image)
	if err != nil {
		return &TurnResult{SessionID: sessionID, UserMessageID: userID},
			fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	assistantID, err := s.AppendTurn(ctx, sessionID, domain.RoleAssistant, domain.ModalityText, answer, nil)
	if err != nil {
		return nil, err
	}

	return &TurnResult{
		SessionID:          sessionID,
		Answer:             answer,
		UserMessageID:      userID,
		AssistantMessageID: assistantID,
	}, nil
}

// ListModels passes the model listing through for the UI's model selector.
func (s *Service) ListModels(ctx context.Context) ([]llm.Model, error) {
	models, err := s.model.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	return models, nil
}
