package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the claims injected by the Auth middleware and
// fast-fails before any service call: an empty email means the
// middleware did not run on this route, which is a wiring bug, not a
// client mistake — still rejected closed with 401.
func ctxIdentity(c echo.Context) (userID, email, role string, err error) {
	email, _ = c.Get("email").(string)
	if email == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(string)
	return userID, email, role, nil
}
