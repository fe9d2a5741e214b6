package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// CustomerRepository defines persistence operations for customer accounts.
type CustomerRepository interface {
	// ExistsByEmailOrUsername reports whether any account already uses the
	// given email or username (single combined query).
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
	// FindAll returns every account, newest first.
	FindAll(ctx context.Context) ([]*domain.Customer, error)
}
