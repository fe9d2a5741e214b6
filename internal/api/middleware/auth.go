package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-api/internal/api/metrics"
	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxCustomerID = "customer_id"
	CtxEmail      = "email"
	CtxUsername   = "username"
	CtxPhone      = "phone"
	CtxImage      = "image"
	CtxIsAdmin    = "is_admin"
)

// Auth requires a valid bearer token and injects its claims into the request
// context. Every rejection reason maps to 401; the reason stays
// distinguishable through the token rejection metric and logs.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionLabel(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(CtxCustomerID, claims.CustomerID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxPhone, claims.Phone)
			c.Set(CtxImage, claims.Image)
			c.Set(CtxIsAdmin, claims.IsAdmin)

			return next(c)
		}
	}
}

func rejectionLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenBadSignature):
		return "bad_signature"
	default:
		return "malformed"
	}
}
