package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the authenticated email injected by the Auth
// middleware. Its presence proves the middleware ran; a missing value means
// the route is miswired, so fail closed with 401.
func ctxIdentity(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
