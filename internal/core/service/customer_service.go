package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// passwordCost is the bcrypt work factor for stored secrets.
const passwordCost = 10

const customerImageFolder = "customer_profiles"

// LoginThrottle records failed login attempts per email. Implementations are
// best-effort: errors are logged, never surfaced to the caller.
type LoginThrottle interface {
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// CustomerService implements account registration, login and profile
// management.
type CustomerService struct {
	repo     ports.CustomerRepository
	tokens   ports.TokenService
	uploader ports.ImageUploader
	throttle LoginThrottle
	logger   zerolog.Logger
}

func NewCustomerService(
	repo ports.CustomerRepository,
	tokens ports.TokenService,
	uploader ports.ImageUploader,
	throttle LoginThrottle,
	logger zerolog.Logger,
) *CustomerService {
	return &CustomerService{
		repo:     repo,
		tokens:   tokens,
		uploader: uploader,
		throttle: throttle,
		logger:   logger,
	}
}

// Register creates a new account. Email and username must each be unused;
// both are checked with a single combined query.
func (s *CustomerService) Register(ctx context.Context, email, username, password string) (*domain.Customer, error) {
	if email == "" || username == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}

	exists, err := s.repo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		return nil, domain.ErrCustomerExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Str("customer_id", created.ID).Str("username", created.Username).Msg("customer registered")
	return created, nil
}

// Login authenticates by email and issues a bearer token. The error is the
// same whether the email is unknown or the password mismatches, so accounts
// cannot be enumerated.
func (s *CustomerService) Login(ctx context.Context, email, password string) (*domain.Customer, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password required", domain.ErrValidation)
	}

	customer, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.recordLoginFailure(ctx, email)
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		s.recordLoginFailure(ctx, email)
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(customer, 0)
	if err != nil {
		return nil, "", fmt.Errorf("login: sign token: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	s.logger.Info().Str("customer_id", customer.ID).Msg("login successful")
	return customer, token, nil
}

func (s *CustomerService) recordLoginFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login failure")
	}
}

// GetProfile returns the account identified by id.
func (s *CustomerService) GetProfile(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial profile update. A provided password is re-hashed;
// a provided image is uploaded to the blob store before anything is persisted,
// so an upload failure leaves the account untouched.
func (s *CustomerService) Update(ctx context.Context, id string, in ports.UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
		if err != nil {
			return nil, fmt.Errorf("update customer: hash password: %w", err)
		}
		customer.PasswordHash = string(hash)
	}
	if in.Username != "" {
		customer.Username = in.Username
	}
	if in.Email != "" {
		customer.Email = in.Email
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}

	if in.Image != nil {
		url, err := s.uploader.Upload(ctx, customerImageFolder, *in.Image)
		if err != nil {
			return nil, fmt.Errorf("update customer: upload image: %w", err)
		}
		customer.Image = url
	}

	customer.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.logger.Info().Str("customer_id", customer.ID).Msg("profile updated")
	return customer, nil
}

// Delete removes the account identified by id.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("customer_id", id).Msg("profile deleted")
	return nil
}

// ListAll returns every account, newest first. The admin requirement is
// enforced here as well as at the route gate.
func (s *CustomerService) ListAll(ctx context.Context, requesterIsAdmin bool) ([]*domain.Customer, error) {
	if !requesterIsAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindAll(ctx)
}

// EnsureAdmin creates an administrator account when none exists for the given
// email. There is no public route that creates admins; startup seeding is the
// only path.
func (s *CustomerService) EnsureAdmin(ctx context.Context, email, username, password string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return fmt.Errorf("ensure admin: hash password: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.repo.Create(ctx, &domain.Customer{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("admin account seeded")
	return nil
}
