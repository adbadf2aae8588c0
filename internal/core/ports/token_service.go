package ports

import (
	"time"

	"github.com/household-store/admin-api/internal/core/domain"
)

// Token type claims carried in the "typ" field.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenPair is the credential set returned on login, registration, and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64
}

// TokenService issues and validates stateless bearer credentials.
type TokenService interface {
	// IssueAccessToken mints a short-lived token carrying the subject's
	// email and role.
	IssueAccessToken(email string, role domain.Role) (string, error)
	// IssueRefreshToken mints a longer-lived renewal token carrying only
	// the subject's email.
	IssueRefreshToken(email string) (string, error)
	// Validate reports whether the token verifies and has not expired.
	// It never returns an error; failure causes are logged only.
	Validate(token string) bool
	// Subject extracts the subject email. Fails with domain.ErrInvalidToken
	// on any token Validate would reject.
	Subject(token string) (string, error)
	// Role extracts the role claim. Refresh tokens carry no role claim and
	// yield an empty role with a nil error.
	Role(token string) (domain.Role, error)
	// TokenType extracts the "typ" claim (access or refresh).
	TokenType(token string) (string, error)
	// AccessTTL is the configured access token lifetime.
	AccessTTL() time.Duration
}
