package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paperball/backend/internal/repositories"
)

// MessageHandler handles the notification feed and read-state mutations
type MessageHandler struct {
	messageRepository repositories.MessageRepository
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository) *MessageHandler {
	return &MessageHandler{messageRepository: messageRepo}
}

// RegisterMessageRoutes registers message-related routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("/users/:id/messages", h.ListMessages)
	g.GET("/users/:id/unread-count", h.CountUnread)
	g.PUT("/messages/:id/read", h.MarkRead)
}

// ListMessages returns the requesting user's own notification feed,
// newest first
func (h *MessageHandler) ListMessages(c echo.Context) error {
	claims := getUserClaims(c)
	userID := c.Param("id")
	if claims.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Cannot read another user's messages")
	}

	messages, err := h.messageRepository.ListForUser(userID, repositories.DefaultMessageLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "messages": messages})
}

// CountUnread returns the requesting user's own unread message count
func (h *MessageHandler) CountUnread(c echo.Context) error {
	claims := getUserClaims(c)
	userID := c.Param("id")
	if claims.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Cannot read another user's messages")
	}

	count, err := h.messageRepository.CountUnread(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": count})
}

// MarkRead flips a message to read. Only the recipient may do this; repeat
// calls are idempotent.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	claims := getUserClaims(c)
	messageID := c.Param("id")

	message, err := h.messageRepository.GetMessageByID(messageID)
	if err != nil {
		return repoError(err, "Message not found")
	}
	if message.UserID != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "Cannot mark another user's message as read")
	}

	if err := h.messageRepository.MarkRead(messageID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
