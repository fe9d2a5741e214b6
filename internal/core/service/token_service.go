package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// DefaultTokenTTL applies when no TTL is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewTokenService(secret string, defaultTTL time.Duration) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), defaultTTL: defaultTTL}
}

// Issue signs a token embedding the customer's identity claims.
func (s *TokenService) Issue(customer *domain.Customer, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"customer_id": customer.ID,
		"email":       customer.Email,
		"username":    customer.Username,
		"phone":       customer.Phone,
		"image":       customer.Image,
		"is_admin":    customer.IsAdmin,
		"iat":         now.Unix(),
		"exp":         now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes and validates a token, returning its claims or one of the
// domain rejection reasons.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenMalformed
	}

	out := &domain.TokenClaims{
		CustomerID: stringClaim(claims, "customer_id"),
		Email:      stringClaim(claims, "email"),
		Username:   stringClaim(claims, "username"),
		Phone:      stringClaim(claims, "phone"),
		Image:      stringClaim(claims, "image"),
	}
	out.IsAdmin, _ = claims["is_admin"].(bool)
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// classifyTokenError maps jwt/v5 parse failures onto the domain rejection
// reasons. Expiry wins over the other reasons when both are reported.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenBadSignature
	default:
		return domain.ErrTokenMalformed
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
