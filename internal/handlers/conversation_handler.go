package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/repositories"
)

// ConversationHandler handles HTTP requests related to conversations
type ConversationHandler struct {
	conversationRepository repositories.ConversationRepository
	userRepository         repositories.UserRepository // to verify the other participant exists
}

// NewConversationHandler creates a new ConversationHandler
func NewConversationHandler(conversationRepo repositories.ConversationRepository, userRepo repositories.UserRepository) *ConversationHandler {
	return &ConversationHandler{
		conversationRepository: conversationRepo,
		userRepository:         userRepo,
	}
}

// RegisterProtectedRoutes registers the conversation routes; all require a token
func (h *ConversationHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/conversations", h.ListConversations)
	g.POST("/conversations", h.GetOrCreateConversation)
}

// ListConversations retrieves every conversation the caller takes part
// in, most recent activity first.
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	conversations, err := h.conversationRepository.ListByParticipant(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list conversations")
	}
	if conversations == nil {
		conversations = []models.Conversation{}
	}
	return c.JSON(http.StatusOK, conversations)
}

// GetOrCreateConversation returns the existing conversation for the
// caller and the other user, in either participant order, or creates
// one. At most one conversation ever exists per unordered pair.
func (h *ConversationHandler) GetOrCreateConversation(c echo.Context) error {
	ctx := c.Request().Context()
	user := currentUser(c)

	otherUserID := c.QueryParam("other_user_id")
	if otherUserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "other_user_id is required")
	}
	if otherUserID == user.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot create conversation with yourself")
	}

	existing, err := h.conversationRepository.FindByParticipants(ctx, user.ID, otherUserID)
	if err == nil {
		return c.JSON(http.StatusOK, existing)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if _, err := h.userRepository.GetUserByID(ctx, otherUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	conversation := &models.Conversation{
		Participant1ID: user.ID,
		Participant2ID: otherUserID,
	}
	if err := h.conversationRepository.CreateConversation(ctx, conversation); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create conversation")
	}

	return c.JSON(http.StatusOK, conversation)
}
