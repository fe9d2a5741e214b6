package ports

import (
	"time"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// TokenService issues and verifies signed bearer tokens. Tokens are
// self-contained: verification needs no store lookup, and revocation is not
// supported — a leaked token stays valid until expiry.
type TokenService interface {
	// Issue signs a token carrying the customer's identity claims. A zero ttl
	// falls back to the service's configured default.
	Issue(customer *domain.Customer, ttl time.Duration) (string, error)
	// Verify decodes and validates a token. On failure the returned error is
	// one of the domain token rejection reasons (malformed, bad signature,
	// expired).
	Verify(token string) (*domain.TokenClaims, error)
}
