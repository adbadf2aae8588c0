package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/core/service"
)

func newTokens(t *testing.T) *service.TokenService {
	t.Helper()
	return service.NewTokenService("middleware-test-secret", time.Hour, 24*time.Hour, zerolog.Nop())
}

func callAuth(t *testing.T, tokens *service.TokenService, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(tokens)(next)(c)
	return c, err
}

func TestAuth_ValidAccessToken(t *testing.T) {
	tokens := newTokens(t)
	access, err := tokens.IssueAccessToken("alice@example.com", domain.RoleManager)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, err := callAuth(t, tokens, "Bearer "+access)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if got, _ := c.Get("email").(string); got != "alice@example.com" {
		t.Errorf("email claim = %q", got)
	}
	if got, _ := c.Get("role").(string); got != "MANAGER" {
		t.Errorf("role claim = %q", got)
	}
}

func TestAuth_RejectsRefreshToken(t *testing.T) {
	tokens := newTokens(t)
	refresh, err := tokens.IssueRefreshToken("alice@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = callAuth(t, tokens, "Bearer "+refresh)
	assertUnauthorized(t, err)
}

func TestAuth_RejectsBadHeaders(t *testing.T) {
	tokens := newTokens(t)

	for _, header := range []string{
		"",
		"Bearer",
		"Basic dXNlcjpwdw==",
		"Bearer not-a-jwt",
	} {
		_, err := callAuth(t, tokens, header)
		assertUnauthorized(t, err)
	}
}

func TestAuth_RejectsForeignToken(t *testing.T) {
	tokens := newTokens(t)
	other := service.NewTokenService("a-different-secret-entirely", time.Hour, 24*time.Hour, zerolog.Nop())
	access, err := other.IssueAccessToken("alice@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = callAuth(t, tokens, "Bearer "+access)
	assertUnauthorized(t, err)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
