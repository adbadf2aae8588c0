package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/core/ports"
)

// signingKeySize is the derived HMAC key length in bytes.
const signingKeySize = 32

const (
	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = 24 * time.Hour
)

// TokenService mints and validates HS256-signed JWTs. No server-side state
// is kept; everything a token asserts is inside its claims.
type TokenService struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     zerolog.Logger
	now        func() time.Time
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, logger zerolog.Logger) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{
		key:        deriveKey(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// deriveKey maps the configured secret onto exactly signingKeySize bytes:
// longer secrets are truncated, shorter ones zero-padded. The derivation is
// deterministic so tokens issued before a restart stay valid.
func deriveKey(secret string) []byte {
	key := make([]byte, signingKeySize)
	copy(key, secret)
	return key
}

func (s *TokenService) IssueAccessToken(email string, role domain.Role) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"typ":  ports.TokenTypeAccess,
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

func (s *TokenService) IssueRefreshToken(email string) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub": email,
		"typ": ports.TokenTypeRefresh,
		"iat": now.Unix(),
		"exp": now.Add(s.refreshTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Validate reports whether the token verifies and has not expired. Failure
// causes are distinguished in logs only; callers treat every false result
// as "unauthenticated".
func (s *TokenService) Validate(token string) bool {
	if _, err := s.parseClaims(token); err != nil {
		return false
	}
	return true
}

// Subject returns the email the token was issued to.
func (s *TokenService) Subject(token string) (string, error) {
	claims, err := s.parseClaims(token)
	if err != nil {
		return "", err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}

// Role returns the role claim. A valid token without a role claim (refresh
// tokens) yields an empty role and a nil error.
func (s *TokenService) Role(token string) (domain.Role, error) {
	claims, err := s.parseClaims(token)
	if err != nil {
		return "", err
	}
	role, _ := claims["role"].(string)
	return domain.Role(role), nil
}

// TokenType returns the "typ" claim: access or refresh.
func (s *TokenService) TokenType(token string) (string, error) {
	claims, err := s.parseClaims(token)
	if err != nil {
		return "", err
	}
	typ, _ := claims["typ"].(string)
	if typ == "" {
		return "", domain.ErrInvalidToken
	}
	return typ, nil
}

func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *TokenService) parseClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		s.logRejection(err)
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

func (s *TokenService) logRejection(err error) {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		s.logger.Warn().Msg("token rejected: expired")
	case errors.Is(err, jwt.ErrTokenMalformed):
		s.logger.Warn().Msg("token rejected: malformed")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		s.logger.Warn().Msg("token rejected: bad signature")
	default:
		s.logger.Warn().Err(err).Msg("token rejected")
	}
}
