package service

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/core/ports"
)

const testSecret = "unit-test-secret-with-enough-length"

func newTestTokenService() *TokenService {
	return NewTokenService(testSecret, time.Hour, 24*time.Hour, zerolog.Nop())
}

func TestTokenService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.IssueAccessToken("alice@example.com", domain.RoleManager)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	if !svc.Validate(token) {
		t.Fatal("freshly issued token must validate")
	}

	sub, err := svc.Subject(token)
	if err != nil || sub != "alice@example.com" {
		t.Fatalf("Subject() = %q, %v", sub, err)
	}

	role, err := svc.Role(token)
	if err != nil || role != domain.RoleManager {
		t.Fatalf("Role() = %q, %v", role, err)
	}

	typ, err := svc.TokenType(token)
	if err != nil || typ != ports.TokenTypeAccess {
		t.Fatalf("TokenType() = %q, %v", typ, err)
	}
}

func TestTokenService_RefreshTokenCarriesNoRole(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.IssueRefreshToken("alice@example.com")
	if err != nil {
		t.Fatalf("issue refresh token: %v", err)
	}

	typ, err := svc.TokenType(token)
	if err != nil || typ != ports.TokenTypeRefresh {
		t.Fatalf("TokenType() = %q, %v", typ, err)
	}

	role, err := svc.Role(token)
	if err != nil {
		t.Fatalf("Role() error: %v", err)
	}
	if role != "" {
		t.Fatalf("refresh token must carry no role, got %q", role)
	}
}

func TestTokenService_ExpiredTokenRejected(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.IssueAccessToken("alice@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	// Move the clock past the access TTL.
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if svc.Validate(token) {
		t.Fatal("expired token must not validate")
	}
	if _, err := svc.Subject(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("Subject() on expired token = %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_TamperedTokenRejected(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.IssueAccessToken("alice@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if svc.Validate(string(tampered)) {
		t.Fatal("tampered token must not validate")
	}
}

func TestTokenService_WrongKeyRejected(t *testing.T) {
	svc := newTestTokenService()
	other := NewTokenService("a-completely-different-secret-value", time.Hour, 24*time.Hour, zerolog.Nop())

	token, err := other.IssueAccessToken("alice@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	if svc.Validate(token) {
		t.Fatal("token signed under another key must not validate")
	}
}

func TestTokenService_ShortSecretStillRoundTrips(t *testing.T) {
	// Secrets shorter than the key size are zero-padded deterministically.
	svc := NewTokenService("short", time.Hour, 24*time.Hour, zerolog.Nop())

	token, err := svc.IssueAccessToken("bob@example.com", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}
	if !svc.Validate(token) {
		t.Fatal("token must validate under the same short secret")
	}
}

func TestTokenService_GarbageRejected(t *testing.T) {
	svc := newTestTokenService()

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if svc.Validate(tok) {
			t.Errorf("Validate(%q) = true", tok)
		}
		if _, err := svc.TokenType(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("TokenType(%q) = %v, want ErrInvalidToken", tok, err)
		}
	}
}
