package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/household-store/admin-api/internal/api/metrics"
	"github.com/household-store/admin-api/internal/core/domain"
)

// errorEnvelope mirrors the success envelope with Success=false and the
// message carried in the error field.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to deterministic HTTP status codes.
//   - Never exposes why a token was rejected (expired vs malformed vs bad
//     signature); all of those surface as a generic 401.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the uniform envelope on every error.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		switch code {
		case http.StatusUnauthorized:
			metrics.AuthDenialsTotal.WithLabelValues("unauthenticated").Inc()
		case http.StatusForbidden:
			metrics.AuthDenialsTotal.WithLabelValues("forbidden").Inc()
		}

		_ = c.JSON(code, errorEnvelope{Success: false, Message: msg, Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware denials).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrInsufficientRights),
		errors.Is(err, domain.ErrAccountDeactivated),
		errors.Is(err, domain.ErrSelfRoleChange),
		errors.Is(err, domain.ErrSelfDeactivation),
		errors.Is(err, domain.ErrSelfDeletion):
		// Distinct messages for the UI, one status code family.
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
