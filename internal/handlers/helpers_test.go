package handlers

import (
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/middleware"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
	"github.com/Sulav-subedi/BNKS-Student-voice/validators"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

// newJSONContext builds an echo context carrying an optional JSON body
// and an optional pre-resolved user, as the auth middleware would.
func newJSONContext(e *echo.Echo, method, target, body string, user *models.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.UserContextKey, user)
	}
	return c, rec
}

func httpStatus(err error) int {
	if err == nil {
		return 0
	}
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return -1
}
