package domain

import "time"

// Customer models a registered account.
type Customer struct {
	ID           string    `json:"customer_id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Image        string    `json:"image,omitempty"`
	IsAdmin      bool      `json:"is_admin,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenClaims is the identity payload embedded in a bearer token. It is never
// persisted; it is rebuilt per request from the signed token.
type TokenClaims struct {
	CustomerID string
	Email      string
	Username   string
	Phone      string
	Image      string
	IsAdmin    bool
	IssuedAt   time.Time
	ExpiresAt  time.Time
}
