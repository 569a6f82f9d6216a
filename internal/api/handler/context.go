package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MehdiDinari/ADEI-Repo/internal/api/middleware"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. Its
// presence proves the middleware ran; handlers behind Auth fast-fail
// with 401 rather than panic when the route is miswired.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
