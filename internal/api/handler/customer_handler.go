package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-api/internal/api/metrics"
	"github.com/storefront/catalog-api/internal/api/middleware"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// CustomerHandler handles HTTP requests for account operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Register creates a new customer account.
//
// @Summary      Register a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/customers/register [post]
func (h *CustomerHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Register(c.Request().Context(), req.Email, req.Username, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Message:  "Customer registered successfully",
		Customer: toCustomerSummary(customer, true),
	})
}

// Login authenticates a customer and returns a bearer token.
//
// @Summary      Login
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/customers/login [post]
func (h *CustomerHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message:  "Login successful",
		Customer: toCustomerSummary(customer, false),
		Token:    token,
	})
}

// GetProfile returns the authenticated customer's own profile.
//
// @Summary      Get own profile
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/profile [get]
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	customerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	customer, err := h.service.GetProfile(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{Customer: toCustomerSummary(customer, true)})
}

// Update applies a partial profile update, optionally replacing the stored
// image with an uploaded file.
//
// @Summary      Update a profile
// @Tags         customers
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true   "Customer ID"
// @Param        username  formData  string  false  "New username"
// @Param        email     formData  string  false  "New email"
// @Param        phone     formData  string  false  "New phone"
// @Param        password  formData  string  false  "New password"
// @Param        image     formData  file    false  "Replacement profile image"
// @Success      200  {object}  updateProfileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/profile/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	image, err := formImage(c, "image")
	if err != nil {
		return err
	}

	customer, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCustomerInput{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		Password: c.FormValue("password"),
		Image:    image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateProfileResponse{
		Message:  "Profile updated successfully",
		Customer: toCustomerSummary(customer, false),
	})
}

// Delete removes a customer account.
//
// @Summary      Delete a profile
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Customer ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/profile/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Profile deleted successfully"})
}

// ListAll returns every customer account. Admin only; the service re-checks
// the admin claim on top of the route gate.
//
// @Summary      List all customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  customerListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/customers/customer [get]
func (h *CustomerHandler) ListAll(c echo.Context) error {
	isAdmin, _ := c.Get(middleware.CtxIsAdmin).(bool)

	customers, err := h.service.ListAll(c.Request().Context(), isAdmin)
	if err != nil {
		return err
	}

	list := make([]customerSummary, 0, len(customers))
	for _, cust := range customers {
		list = append(list, toCustomerSummary(cust, true))
	}

	return c.JSON(http.StatusOK, customerListResponse{Success: true, List: list})
}
