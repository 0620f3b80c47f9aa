package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/repositories"
)

// MessageHandler handles HTTP requests related to messages
type MessageHandler struct {
	messageRepository      repositories.MessageRepository
	conversationRepository repositories.ConversationRepository // for participant checks and the last-message projection
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository, conversationRepo repositories.ConversationRepository) *MessageHandler {
	return &MessageHandler{
		messageRepository:      messageRepo,
		conversationRepository: conversationRepo,
	}
}

// RegisterProtectedRoutes registers the message routes; all require a token
func (h *MessageHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/conversations/:conversation_id/messages", h.ListMessages)
	g.POST("/messages", h.SendMessage)
}

// ListMessages retrieves the messages of a conversation in ascending
// creation order. A conversation the caller is not part of is
// indistinguishable from a missing one.
func (h *MessageHandler) ListMessages(c echo.Context) error {
	ctx := c.Request().Context()
	conversationID := c.Param("conversation_id")

	if _, err := h.conversationRepository.GetForParticipant(ctx, conversationID, currentUser(c).ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Conversation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	messages, err := h.messageRepository.ListByConversationID(ctx, conversationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list messages")
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

// SendMessage appends a message to a conversation the caller takes
// part in and refreshes the conversation's last-message projection.
// The projection update is a separate atomic operation; a crash in
// between leaves it stale until the next message.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req models.CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user := currentUser(c)

	if _, err := h.conversationRepository.GetForParticipant(ctx, req.ConversationID, user.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Conversation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	message := &models.Message{
		ConversationID: req.ConversationID,
		SenderID:       user.ID,
		Content:        req.Content,
	}
	if err := h.messageRepository.CreateMessage(ctx, message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send message")
	}

	if err := h.conversationRepository.SetLastMessage(ctx, req.ConversationID, req.Content, time.Now().UTC()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update conversation")
	}

	return c.JSON(http.StatusOK, message)
}
