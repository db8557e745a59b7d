package v1

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ChatRequest is the JSON body for a text turn. An empty session id resolves
// through the active-session selector, minting a fresh session on first use.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// PostChat runs one text chat round-trip.
// POST /v1/chat
func (h *Handler) PostChat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text is required"})
	}

	ctx := c.Request().Context()

	result, err := h.service.SendText(ctx, req.SessionID, req.Text)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// PostChatImage runs an image turn: multipart form with an "image" file, an
// optional "text" caption, and an optional "session_id" field.
// POST /v1/chat/image
func (h *Handler) PostChatImage(c echo.Context) error {
	image, _, err := formFileBytes(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "image file is required"})
	}

	ctx := c.Request().Context()

	result, err := h.service.SendImage(ctx, c.FormValue("session_id"), c.FormValue("text"), image)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// PostChatAudio runs an audio turn: multipart form with an "audio" file and
// an optional "session_id" field. The transcription is returned alongside
// the reply.
// POST /v1/chat/audio
func (h *Handler) PostChatAudio(c echo.Context) error {
	audio, filename, err := formFileBytes(c, "audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "audio file is required"})
	}

	ctx := c.Request().Context()

	result, transcription, err := h.service.SendAudio(ctx, c.FormValue("session_id"), audio, filename)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"result":        result,
		"transcription": transcription,
	})
}

// ListModels lists the models available at the configured endpoint.
// GET /v1/models
func (h *Handler) ListModels(c echo.Context) error {
	ctx := c.Request().Context()

	models, err := h.service.ListModels(ctx)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"models": models,
	})
}

// formFileBytes reads one uploaded file from the multipart form.
func formFileBytes(c echo.Context, field string) ([]byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fileHeader.Filename, nil
}
