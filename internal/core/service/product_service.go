package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

const productImageFolder = "product_images"

// unknownCreator is recorded when the creator's username claim is absent.
const unknownCreator = "Unknown"

// ProductService implements catalog CRUD with derived-pricing maintenance.
type ProductService struct {
	repo     ports.ProductRepository
	uploader ports.ImageUploader
	logger   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, uploader ports.ImageUploader, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, uploader: uploader, logger: logger}
}

// Create validates the full field set, coerces the numeric inputs, derives
// unit_price and total, and persists the product. A discount of "0" counts as
// provided. The image, when present, is uploaded before anything is persisted.
func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if in.Name == "" || in.Category == "" || in.Description == "" ||
		in.Quantity == "" || in.Price == "" || in.Discount == "" {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrValidation)
	}

	quantity, err := domain.ParseQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	price, err := domain.ParseAmount("price", in.Price)
	if err != nil {
		return nil, err
	}
	discount, err := domain.ParseAmount("discount", in.Discount)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if in.Image != nil {
		imageURL, err = s.uploader.Upload(ctx, productImageFolder, *in.Image)
		if err != nil {
			return nil, fmt.Errorf("create product: upload image: %w", err)
		}
	}

	createdBy := in.CreatedBy
	if createdBy == "" {
		createdBy = unknownCreator
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Quantity:    quantity,
		Price:       price,
		Discount:    discount,
		Image:       imageURL,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	product.Recompute()

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", created.ID).
		Str("category", created.Category).
		Str("created_by", created.CreatedBy).
		Msg("product created")
	return created, nil
}

// GetAll returns every product, most recently created first.
func (s *ProductService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns a single product.
func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Update merges the provided fields over the stored product, recomputes the
// derived pricing from the merged result (unconditionally, so stored derived
// values can never drift from stored inputs), and persists the candidate as
// a whole.
func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Quantity != "" {
		if product.Quantity, err = domain.ParseQuantity(in.Quantity); err != nil {
			return nil, err
		}
	}
	if in.Price != "" {
		if product.Price, err = domain.ParseAmount("price", in.Price); err != nil {
			return nil, err
		}
	}
	if in.Discount != "" {
		if product.Discount, err = domain.ParseAmount("discount", in.Discount); err != nil {
			return nil, err
		}
	}

	if in.Image != nil {
		url, err := s.uploader.Upload(ctx, productImageFolder, *in.Image)
		if err != nil {
			return nil, fmt.Errorf("update product: upload image: %w", err)
		}
		product.Image = url
	}

	product.Recompute()
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID).Msg("product updated")
	return product, nil
}

// Remove deletes a product by id.
func (s *ProductService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
