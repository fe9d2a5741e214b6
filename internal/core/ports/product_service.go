package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// CreateProductInput carries the raw product fields from the transport layer.
// Numeric fields arrive as text (multipart form values) and are coerced by
// the service; a blank numeric field counts as missing. "0" is a provided
// value, discount included.
type CreateProductInput struct {
	Name        string
	Category    string
	Description string
	Quantity    string
	Price       string
	Discount    string
	Image       *ImageUpload // optional
	CreatedBy   string       // creator's username claim
}

// UpdateProductInput carries a partial product update. Blank fields keep the
// stored value; derived pricing is recomputed from the merged result either way.
type UpdateProductInput struct {
	Name        string
	Category    string
	Description string
	Quantity    string
	Price       string
	Discount    string
	Image       *ImageUpload // optional replacement image
}

// ProductService implements the catalog business rules.
type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Remove(ctx context.Context, id string) error
}
