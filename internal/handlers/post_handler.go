package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/catalog"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/repositories"
)

// PostHandler handles HTTP requests related to posts and votes
type PostHandler struct {
	postRepository repositories.PostRepository
	groupCatalog   *catalog.Catalog
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, groupCatalog *catalog.Catalog) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		groupCatalog:   groupCatalog,
	}
}

// RegisterPublicRoutes registers the unauthenticated post routes
func (h *PostHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/posts", h.ListPosts)
}

// RegisterProtectedRoutes registers the post routes requiring a token
func (h *PostHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.POST("/posts/:post_id/upvote", h.Upvote)
	g.POST("/posts/:post_id/downvote", h.Downvote)
}

// CreatePost creates a feedback post targeting a catalog group. The
// author's anonymous tag is snapshotted onto the post so later tag
// changes never rewrite history.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if !h.groupCatalog.Valid(req.TargetGroupType, req.TargetGroupName) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid target group")
	}

	user := currentUser(c)
	post := &models.Post{
		Title:           req.Title,
		Content:         req.Content,
		Category:        req.Category,
		TargetGroupType: req.TargetGroupType,
		TargetGroupName: req.TargetGroupName,
		AuthorID:        user.ID,
		AnonymousTag:    user.AnonymousTag,
	}
	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create post")
	}

	return c.JSON(http.StatusOK, post)
}

// ListPosts retrieves posts, optionally filtered by category and
// target group, newest first.
func (h *PostHandler) ListPosts(c echo.Context) error {
	filter := models.PostFilter{
		Category:        c.QueryParam("category"),
		TargetGroupType: c.QueryParam("target_group_type"),
		TargetGroupName: c.QueryParam("target_group_name"),
	}

	posts, err := h.postRepository.ListPosts(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list posts")
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(http.StatusOK, posts)
}

// Upvote toggles the caller's upvote on a post. Upvoting a second time
// removes the vote; upvoting with a downvote in place swaps it.
func (h *PostHandler) Upvote(c echo.Context) error {
	return h.toggleVote(c, h.postRepository.RemoveUpvote, h.postRepository.CastUpvote)
}

// Downvote toggles the caller's downvote on a post.
func (h *PostHandler) Downvote(c echo.Context) error {
	return h.toggleVote(c, h.postRepository.RemoveDownvote, h.postRepository.CastDownvote)
}

func (h *PostHandler) toggleVote(
	c echo.Context,
	remove func(ctx context.Context, postID, userID string) (bool, error),
	cast func(ctx context.Context, postID, userID string) error,
) error {
	ctx := c.Request().Context()
	postID := c.Param("post_id")
	user := currentUser(c)

	if _, err := h.postRepository.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	removed, err := remove(ctx, postID, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update vote")
	}
	if !removed {
		if err := cast(ctx, postID, user.ID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "Post not found")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update vote")
		}
	}

	post, err := h.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"upvote_count":   len(post.Upvotes),
		"downvote_count": len(post.Downvotes),
	})
}
