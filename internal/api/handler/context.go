package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the user id injected by the Auth middleware. Its
// presence proves the middleware ran; protected handlers fail fast with 401
// before any service call otherwise.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// ctxViewerID is ctxUserID for routes that also serve anonymous viewers: it
// returns the empty string when no claims are present.
func ctxViewerID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}
