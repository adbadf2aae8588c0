package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/core/ports"
)

// AuthService implements registration, login, and the token lifecycle.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new USER account and logs it in. A taken email fails
// with domain.ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	exists, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Surname:      input.Surname,
		Telephone:    input.Telephone,
		BirthDate:    input.BirthDate,
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return s.issuePair(created)
}

// Login authenticates by email and password. Unknown email and wrong
// password both fail with domain.ErrInvalidCredentials; a deactivated
// account fails with domain.ErrAccountDeactivated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Matches(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, domain.ErrAccountDeactivated
	}

	s.logger.Info().Str("email", user.Email).Msg("user logged in")
	return s.issuePair(user)
}

// Validate verifies an access token and returns the account it belongs to.
func (s *AuthService) Validate(ctx context.Context, token string) (*domain.User, error) {
	if !s.tokens.Validate(token) {
		return nil, domain.ErrInvalidToken
	}

	typ, err := s.tokens.TokenType(token)
	if err != nil || typ != ports.TokenTypeAccess {
		return nil, domain.ErrInvalidToken
	}

	email, err := s.tokens.Subject(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	return s.repo.FindByEmail(ctx, email)
}

// Refresh exchanges a valid refresh token for a new access+refresh pair.
// The role claim of the new access token comes from the identity store, so
// role changes made after the refresh token was issued take effect.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	if !s.tokens.Validate(refreshToken) {
		return nil, domain.ErrInvalidToken
	}

	typ, err := s.tokens.TokenType(refreshToken)
	if err != nil || typ != ports.TokenTypeRefresh {
		return nil, domain.ErrInvalidToken
	}

	email, err := s.tokens.Subject(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if !user.Active {
		return nil, domain.ErrAccountDeactivated
	}

	s.logger.Info().Str("email", user.Email).Msg("token pair refreshed")
	return s.issuePair(user)
}

func (s *AuthService) issuePair(user *domain.User) (*ports.AuthResult, error) {
	access, err := s.tokens.IssueAccessToken(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(user.Email)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{
		Tokens: ports.TokenPair{
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
		},
		User: user,
	}, nil
}
