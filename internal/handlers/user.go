package handlers

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/repositories"
)

const searchResultCap = 20

// Full-id queries are rejected outright so the directory cannot be
// used to confirm whether a given user id exists.
var userIDPattern = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// UserHandler handles HTTP requests related to the user directory
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterProtectedRoutes registers the user directory routes
func (h *UserHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/users/search", h.SearchUsers)
}

// SearchUsers performs a privacy-preserving fuzzy lookup against
// anonymous tags and display names. Results expose only the anonymous
// tag as the displayed identity; real names and emails never leave the
// server.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if len(query) < 2 || userIDPattern.MatchString(query) {
		return c.JSON(http.StatusOK, []models.SearchResult{})
	}

	pattern := regexp.QuoteMeta(query)
	users, err := h.userRepository.SearchUsers(c.Request().Context(), pattern, currentUser(c).ID, searchResultCap)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Search failed")
	}

	results := make([]models.SearchResult, 0, len(users))
	for _, u := range users {
		results = append(results, models.SearchResult{
			ID:           u.ID,
			Name:         u.AnonymousTag, // the tag doubles as the visible name
			AnonymousTag: u.AnonymousTag,
			Role:         u.Role,
			CreatedAt:    u.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, results)
}
