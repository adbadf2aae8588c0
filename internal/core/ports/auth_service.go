package ports

import (
	"context"
	"time"

	"github.com/household-store/admin-api/internal/core/domain"
)

// RegisterInput carries the data for self-registration. Role is always USER.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Surname   string
	Telephone string
	BirthDate time.Time
}

// AuthResult bundles the issued token pair with the account it belongs to.
type AuthResult struct {
	Tokens TokenPair
	User   *domain.User
}

// AuthService implements registration, login, and the token lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Validate verifies an access token and returns the current account.
	Validate(ctx context.Context, token string) (*domain.User, error)
	// Refresh exchanges a valid refresh token for a fresh token pair. The
	// role claim is re-read from the store, not from the old token.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}
