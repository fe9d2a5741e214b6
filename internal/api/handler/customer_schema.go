package handler

import (
	"time"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// errorResponse documents the error envelope rendered by the central error
// handler.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// customerSummary is the public projection of an account. It never carries
// the password hash.
type customerSummary struct {
	CustomerID string     `json:"customer_id"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	Phone      string     `json:"phone,omitempty"`
	Image      string     `json:"image,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

type registerResponse struct {
	Message  string          `json:"message"`
	Customer customerSummary `json:"customer"`
}

type loginResponse struct {
	Message  string          `json:"message"`
	Customer customerSummary `json:"customer"`
	Token    string          `json:"token"`
}

type profileResponse struct {
	Customer customerSummary `json:"customer"`
}

type updateProfileResponse struct {
	Message  string          `json:"message"`
	Customer customerSummary `json:"customer"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type customerListResponse struct {
	Success bool              `json:"success"`
	List    []customerSummary `json:"list"`
}

func toCustomerSummary(c *domain.Customer, withCreatedAt bool) customerSummary {
	out := customerSummary{
		CustomerID: c.ID,
		Email:      c.Email,
		Username:   c.Username,
		Phone:      c.Phone,
		Image:      c.Image,
	}
	if withCreatedAt {
		createdAt := c.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}
