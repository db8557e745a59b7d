package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kexin8/multichat/internal/adapter/llm"
	"github.com/kexin8/multichat/internal/domain"
)

// GetSessionMessages retrieves the full history of a session for rendering.
// Blob payloads are base64-encoded by the JSON encoder.
// GET /v1/sessions/:session_id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	sessionID := c.Param("session_id")
	ctx := c.Request().Context()

	messages, err := h.service.History(ctx, sessionID)
	if err != nil {
		return errorJSON(c, err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

// AppendMessageRequest is the JSON body for a raw append. Blob is
// base64-encoded by JSON convention for []byte.
type AppendMessageRequest struct {
	Role     domain.Role     `json:"sender_role"`
	Modality domain.Modality `json:"modality"`
	Text     string          `json:"text,omitempty"`
	Blob     []byte          `json:"blob,omitempty"`
}

// AppendMessage appends a single turn without a model round-trip.
// POST /v1/sessions/:session_id/messages
func (h *Handler) AppendMessage(c echo.Context) error {
	sessionID := c.Param("session_id")

	var req AppendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ctx := c.Request().Context()

	id, err := h.service.AppendTurn(ctx, sessionID, req.Role, req.Modality, req.Text, req.Blob)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message_id": id,
	})
}

// GetContextWindow returns the bounded role/content sequence the model would
// receive for this session.
// GET /v1/sessions/:session_id/context?k=
func (h *Handler) GetContextWindow(c echo.Context) error {
	sessionID := c.Param("session_id")

	k := h.service.MemoryLength()
	if q := c.QueryParam("k"); q != "" {
		if val, err := strconv.Atoi(q); err == nil {
			k = val
		}
	}

	ctx := c.Request().Context()

	window, err := h.service.ContextWindow(ctx, sessionID, k)
	if err != nil {
		return errorJSON(c, err)
	}
	if window == nil {
		window = []llm.ChatMessage{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"context": window,
	})
}
