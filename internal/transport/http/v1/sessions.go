package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kexin8/multichat/internal/domain"
)

// ListSessions lists all sessions in creation order.
// GET /v1/sessions
func (h *Handler) ListSessions(c echo.Context) error {
	ctx := c.Request().Context()

	sessions, err := h.service.ListSessions(ctx)
	if err != nil {
		return errorJSON(c, err)
	}
	if sessions == nil {
		sessions = []domain.SessionInfo{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sessions": sessions,
	})
}

// GetActiveSession resolves the active session id, minting a fresh
// timestamp-derived id on first use.
// GET /v1/sessions/active
func (h *Handler) GetActiveSession(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"session_id": h.service.Sessions().Resolve(),
	})
}

// StartNewSession resets the active-session selector to NEW.
// POST /v1/sessions/new
func (h *Handler) StartNewSession(c echo.Context) error {
	h.service.StartNewSession()
	return c.NoContent(http.StatusNoContent)
}

// DeleteSession destroys a session and all its messages. Unknown ids are a
// no-op.
// DELETE /v1/sessions/:session_id
func (h *Handler) DeleteSession(c echo.Context) error {
	sessionID := c.Param("session_id")
	ctx := c.Request().Context()

	if err := h.service.DeleteSession(ctx, sessionID); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
