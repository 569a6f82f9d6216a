package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

func roleContext(role domain.Role) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(ContextUserKey, &domain.User{ID: "user_1", Username: "alice", Role: role})
	}
	return c
}

func TestRequireRole_Allowed(t *testing.T) {
	c := roleContext(domain.RoleAdmin)

	called := false
	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	// Authenticated but underprivileged: 403, not 401.
	c := roleContext(domain.RoleGuest)

	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireRole_MissingUser(t *testing.T) {
	c := roleContext("")

	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error { return nil })(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	c := roleContext(domain.RoleAdherent)

	called := false
	err := RequireRole(domain.RoleAdmin, domain.RoleAdherent)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil || !called {
		t.Fatalf("adherent should pass a admin-or-adherent gate: %v", err)
	}
}
