package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quickshop/store-api/internal/core/domain"
)

func newScopeContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequireScope_Allows(t *testing.T) {
	c := newScopeContext(t)
	c.Set(IdentityKey, domain.Identity{
		Subject: "admin",
		Scopes:  []string{domain.ScopeUsersSelf, domain.ScopeUsersAdmin},
	})

	called := false
	err := RequireScope(domain.ScopeUsersAdmin)(func(echo.Context) error {
		called = true
		return nil
	})(c)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatal("next was not called")
	}
}

func TestRequireScope_Insufficient(t *testing.T) {
	c := newScopeContext(t)
	c.Set(IdentityKey, domain.Identity{
		Subject: "alice",
		Scopes:  []string{domain.ScopeUsersSelf, domain.ScopeCartsSelf},
	})

	err := RequireScope(domain.ScopeUsersAdmin)(func(echo.Context) error {
		t.Fatal("next should not run")
		return nil
	})(c)
	if !errors.Is(err, domain.ErrInsufficientScope) {
		t.Fatalf("expected ErrInsufficientScope, got %v", err)
	}
}

func TestRequireScope_NoIdentity(t *testing.T) {
	c := newScopeContext(t)

	err := RequireScope(domain.ScopeUsersSelf)(func(echo.Context) error {
		t.Fatal("next should not run")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
