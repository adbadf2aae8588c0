package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Surname   string `json:"surname"`
	Telephone string `json:"telephone"  validate:"omitempty,e164"`
	BirthDate string `json:"birth_date"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// parseBirthDate accepts an optional YYYY-MM-DD string. Empty input is a
// zero time, not an error.
func parseBirthDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "birth_date must be in YYYY-MM-DD format")
	}
	return t, nil
}
