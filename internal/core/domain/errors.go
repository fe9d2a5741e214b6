package domain

import "errors"

var (
	ErrValidation         = errors.New("missing or malformed input")
	ErrCustomerExists     = errors.New("customer already exists")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProductNotFound    = errors.New("product not found")
	ErrForbidden          = errors.New("access denied")
)

// Token rejection reasons. The authorization gate treats all three as an
// authentication failure; they stay distinct so logs and tests can tell
// them apart.
var (
	ErrTokenMalformed    = errors.New("malformed token")
	ErrTokenBadSignature = errors.New("invalid token signature")
	ErrTokenExpired      = errors.New("token expired")
)

// IsTokenRejection reports whether err is one of the token rejection reasons.
func IsTokenRejection(err error) bool {
	return errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenBadSignature) ||
		errors.Is(err, ErrTokenExpired)
}
