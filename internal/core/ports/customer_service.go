package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// UpdateCustomerInput carries the optional profile fields for a partial
// update. Empty strings mean "not provided, keep the stored value".
type UpdateCustomerInput struct {
	Username string
	Email    string
	Phone    string
	Password string
	Image    *ImageUpload // optional replacement image
}

// CustomerService implements the account business rules.
type CustomerService interface {
	Register(ctx context.Context, email, username, password string) (*domain.Customer, error)
	// Login authenticates by email and returns the account plus a signed
	// bearer token. Unknown email and wrong password fail identically.
	Login(ctx context.Context, email, password string) (*domain.Customer, string, error)
	GetProfile(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
	// ListAll returns every account. requesterIsAdmin is re-checked here in
	// addition to the route gate.
	ListAll(ctx context.Context, requesterIsAdmin bool) ([]*domain.Customer, error)
}
