package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-api/internal/core/service"
)

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxIsAdmin, true)

	called := false
	handler := AdminOnly()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminOnly_ForbidsNonAdmin(t *testing.T) {
	e := echo.New()

	for name, setup := range map[string]func(echo.Context){
		"claim false":  func(c echo.Context) { c.Set(CtxIsAdmin, false) },
		"claim absent": func(echo.Context) {},
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			setup(c)

			handler := AdminOnly()(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}

			if rec.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", rec.Code)
			}
		})
	}
}

// The full admin-route matrix: no token → 401, valid non-admin token → 403,
// valid admin token → 200.
func TestAdminRoute_Matrix(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	chain := Auth(tokens)(AdminOnly()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"non-admin token", "Bearer " + issueToken(t, "secret", false, 0), http.StatusForbidden},
		{"admin token", "Bearer " + issueToken(t, "secret", true, 0), http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := chain(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
