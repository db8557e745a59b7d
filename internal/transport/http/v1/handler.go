// Package v1 provides HTTP handlers for the chat service.
package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kexin8/multichat/internal/domain"
	"github.com/kexin8/multichat/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Session registry
	e.GET("/v1/sessions", h.ListSessions)
	e.GET("/v1/sessions/active", h.GetActiveSession)
	e.POST("/v1/sessions/new", h.StartNewSession)
	e.DELETE("/v1/sessions/:session_id", h.DeleteSession)

	// Message log
	e.GET("/v1/sessions/:session_id/messages", h.GetSessionMessages)
	e.POST("/v1/sessions/:session_id/messages", h.AppendMessage)
	e.GET("/v1/sessions/:session_id/context", h.GetContextWindow)

	// Chat round-trips
	e.POST("/v1/chat", h.PostChat)
	e.POST("/v1/chat/image", h.PostChatImage)
	e.POST("/v1/chat/audio", h.PostChatAudio)

	// Document ingestion
	e.POST("/v1/ingest", h.PostIngest)

	// Model selector
	e.GET("/v1/models", h.ListModels)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// errorJSON maps domain errors to HTTP statuses.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidModality),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrPolicyBlocked):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrGenerationFailed):
		status = http.StatusBadGateway
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
