package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/catalog"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/repositories"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/scoring"
)

// GroupHandler serves the computed per-group performance views
type GroupHandler struct {
	postRepository repositories.PostRepository
	groupCatalog   *catalog.Catalog
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(postRepo repositories.PostRepository, groupCatalog *catalog.Catalog) *GroupHandler {
	return &GroupHandler{
		postRepository: postRepo,
		groupCatalog:   groupCatalog,
	}
}

// RegisterPublicRoutes registers the group routes; group views are public
func (h *GroupHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/groups", h.ListGroups)
	g.GET("/groups/:group_type/:group_name", h.GetGroup)
}

// ListGroups computes the performance score for every catalog group,
// in catalog order.
func (h *GroupHandler) ListGroups(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now().UTC()

	entries := h.groupCatalog.Entries()
	groups := make([]models.Group, 0, len(entries))
	for _, entry := range entries {
		posts, err := h.postRepository.ListPostsByTargetGroup(ctx, entry.Type, entry.Name)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load posts")
		}
		groups = append(groups, scoring.ComputeScore(entry.Type, entry.Name, posts, now))
	}

	return c.JSON(http.StatusOK, groups)
}

// GetGroup computes the performance score for a single catalog group.
func (h *GroupHandler) GetGroup(c echo.Context) error {
	groupType := c.Param("group_type")
	groupName := c.Param("group_name")

	if !h.groupCatalog.Valid(groupType, groupName) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid target group")
	}

	posts, err := h.postRepository.ListPostsByTargetGroup(c.Request().Context(), groupType, groupName)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load posts")
	}

	return c.JSON(http.StatusOK, scoring.ComputeScore(groupType, groupName, posts, time.Now().UTC()))
}
