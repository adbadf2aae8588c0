package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/core/ports"
)

// apiResponse is the uniform envelope returned by every endpoint. Error
// responses use the same shape with Success=false; they are rendered by the
// central HTTP error handler.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, apiResponse{Success: true, Message: message, Data: data})
}

// userResponse is the public view of an account. The password hash never
// appears here.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Surname   string    `json:"surname,omitempty"`
	Telephone string    `json:"telephone,omitempty"`
	BirthDate string    `json:"birth_date,omitempty"`
	Age       int       `json:"age,omitempty"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Surname:   u.Surname,
		Telephone: u.Telephone,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if !u.BirthDate.IsZero() {
		resp.BirthDate = u.BirthDate.Format("2006-01-02")
		resp.Age = u.Age(time.Now().UTC())
	}
	return resp
}

func newUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}

// authResponse carries the issued token pair plus the account view.
type authResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	User         userResponse `json:"user"`
}

func newAuthResponse(result *ports.AuthResult) authResponse {
	return authResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    result.Tokens.ExpiresIn,
		User:         newUserResponse(result.User),
	}
}

type rolesResponse struct {
	Roles []string `json:"roles"`
}

func newRolesResponse(roles []domain.Role) rolesResponse {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return rolesResponse{Roles: out}
}
