package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-api/internal/api/metrics"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// GetAll lists every product, most recently created first.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {object}  productListResponse
// @Router       /api/products [get]
func (h *ProductHandler) GetAll(c echo.Context) error {
	products, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	list := make([]productView, 0, len(products))
	for _, p := range products {
		list = append(list, normalizeProduct(p))
	}

	return c.JSON(http.StatusOK, productListResponse{Success: true, List: list})
}

// GetByID returns a single product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c echo.Context) error {
	product, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{Success: true, Product: normalizeProduct(product)})
}

// Create adds a product. All fields are required; "0" is a valid discount.
// Numeric fields arrive as form text and are coerced by the service, which
// also derives unit_price and total.
//
// @Summary      Create a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Name"
// @Param        category     formData  string  true   "Category"
// @Param        description  formData  string  true   "Description"
// @Param        quantity     formData  string  true   "Quantity"
// @Param        price        formData  string  true   "Unit list price"
// @Param        discount     formData  string  true   "Discount percentage"
// @Param        image        formData  file    false  "Product image"
// @Success      201  {object}  productMutationResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	_, username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	image, err := formImage(c, "image")
	if err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        c.FormValue("name"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		Quantity:    c.FormValue("quantity"),
		Price:       c.FormValue("price"),
		Discount:    c.FormValue("discount"),
		Image:       image,
		CreatedBy:   username,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(product.Category).Inc()

	return c.JSON(http.StatusCreated, productMutationResponse{
		Success: true,
		Message: "Product created successfully",
		Product: normalizeProduct(product),
	})
}

// Update applies a partial product update; omitted fields keep their stored
// values and derived pricing is recomputed from the merged result.
//
// @Summary      Update a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "Product ID"
// @Param        name         formData  string  false  "Name"
// @Param        category     formData  string  false  "Category"
// @Param        description  formData  string  false  "Description"
// @Param        quantity     formData  string  false  "Quantity"
// @Param        price        formData  string  false  "Unit list price"
// @Param        discount     formData  string  false  "Discount percentage"
// @Param        image        formData  file    false  "Replacement image"
// @Success      200  {object}  productMutationResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	image, err := formImage(c, "image")
	if err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        c.FormValue("name"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		Quantity:    c.FormValue("quantity"),
		Price:       c.FormValue("price"),
		Discount:    c.FormValue("discount"),
		Image:       image,
	})
	if err != nil {
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, productMutationResponse{
		Success: true,
		Message: "Product updated successfully",
		Product: normalizeProduct(product),
	})
}

// Remove deletes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Product ID"
// @Success      200  {object}  productDeleteResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Remove(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Remove(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()

	return c.JSON(http.StatusOK, productDeleteResponse{
		Success:   true,
		Message:   "Product deleted successfully",
		DeletedID: id,
	})
}
