package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository // to verify posts and bump their comment count
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterPublicRoutes registers the unauthenticated comment routes
func (h *CommentHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/posts/:post_id/comments", h.ListComments)
}

// RegisterProtectedRoutes registers the comment routes requiring a token
func (h *CommentHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
}

// CreateComment appends a comment to a post and increments the post's
// denormalized comment count. The count update is a separate atomic
// operation; a crash in between leaves it stale until the next comment.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	postID := c.Param("post_id")

	if _, err := h.postRepository.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	user := currentUser(c)
	comment := &models.Comment{
		PostID:       postID,
		AuthorID:     user.ID,
		AnonymousTag: user.AnonymousTag,
		Content:      req.Content,
	}
	if err := h.commentRepository.CreateComment(ctx, comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create comment")
	}

	if err := h.postRepository.IncrementCommentCount(ctx, postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update comment count")
	}

	return c.JSON(http.StatusOK, comment)
}

// ListComments retrieves the comments of a post in ascending creation
// order. An unknown post yields an empty list rather than a 404.
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.commentRepository.ListCommentsByPostID(c.Request().Context(), c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list comments")
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return c.JSON(http.StatusOK, comments)
}
