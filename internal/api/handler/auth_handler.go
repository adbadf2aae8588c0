package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/household-store/admin-api/internal/api/metrics"
	"github.com/household-store/admin-api/internal/core/ports"
)

// AuthHandler exposes registration, login, and the token lifecycle.
type AuthHandler struct {
	authService ports.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Register creates a new USER account and returns a token pair.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Surname:   req.Surname,
		Telephone: req.Telephone,
		BirthDate: birthDate,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	metrics.TokenPairsIssuedTotal.WithLabelValues("register").Inc()

	return respond(c, http.StatusCreated, "registration successful", newAuthResponse(result))
}

// Login authenticates a user and returns a token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Failure      403   {object}  apiResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokenPairsIssuedTotal.WithLabelValues("login").Inc()

	return respond(c, http.StatusOK, "login successful", newAuthResponse(result))
}

// Logout acknowledges a logout. Auth is token-based and stateless, so there
// is nothing to invalidate server-side; the client discards its tokens.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  apiResponse
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := bearerToken(c); err == nil {
		h.logger.Info().Msg("user logged out")
	}
	return respond(c, http.StatusOK, "logout successful", nil)
}

// Validate checks the bearer token and returns the account it belongs to.
//
// @Summary      Validate the current access token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  apiResponse
// @Router       /api/v1/auth/validate [get]
func (h *AuthHandler) Validate(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Validate(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "token is valid", newUserResponse(user))
}

// Refresh exchanges a refresh token for a fresh token pair.
//
// @Summary      Refresh the token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	metrics.TokenPairsIssuedTotal.WithLabelValues("refresh").Inc()

	return respond(c, http.StatusOK, "token refreshed", newAuthResponse(result))
}
