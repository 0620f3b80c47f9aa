package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/middleware"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
)

// currentUser returns the user resolved by the auth middleware. Only
// call it from handlers registered on the protected route group.
func currentUser(c echo.Context) *models.User {
	return c.Get(middleware.UserContextKey).(*models.User)
}
