package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storefront/catalog-api/internal/core/domain"
)

func testCustomer() *domain.Customer {
	return &domain.Customer{
		ID:       "cust_1",
		Email:    "alice@example.com",
		Username: "alice",
		Phone:    "555-0100",
		Image:    "https://img.example.com/alice.png",
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testCustomer(), 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.CustomerID != "cust_1" {
		t.Fatalf("unexpected customer_id: %s", claims.CustomerID)
	}
	if claims.Email != "alice@example.com" || claims.Username != "alice" {
		t.Fatalf("unexpected display claims: %+v", claims)
	}
	if claims.IsAdmin {
		t.Fatalf("expected non-admin claims")
	}
	if claims.ExpiresAt.Before(claims.IssuedAt) {
		t.Fatalf("expiry %v precedes issue %v", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestTokenService_AdminClaim(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	admin := testCustomer()
	admin.IsAdmin = true

	token, err := svc.Issue(admin, 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !claims.IsAdmin {
		t.Fatalf("expected is_admin claim to survive the round trip")
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testCustomer(), -time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_BadSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	other := NewTokenService("different-secret", time.Hour)

	token, err := other.Issue(testCustomer(), 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenBadSignature) {
		t.Fatalf("expected ErrTokenBadSignature, got %v", err)
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testCustomer(), 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"customer_id": "cust_1",
		"is_admin":    true,
	}).SignedString([]byte("attacker"))
	if err != nil {
		t.Fatalf("sign forged token: %v", err)
	}
	tampered := parts[0] + "." + strings.Split(forged, ".")[1] + "." + parts[2]

	if _, err := svc.Verify(tampered); !domain.IsTokenRejection(err) {
		t.Fatalf("expected a token rejection, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b"} {
		if _, err := svc.Verify(tok); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"customer_id": "cust_1",
		"is_admin":    true,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign unsigned token: %v", err)
	}

	if _, err := svc.Verify(unsigned); !domain.IsTokenRejection(err) {
		t.Fatalf("expected rejection for alg=none, got %v", err)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)

	token, err := svc.Issue(testCustomer(), 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt)
	if ttl != DefaultTokenTTL {
		t.Fatalf("default ttl = %v, want %v", ttl, DefaultTokenTTL)
	}
}
