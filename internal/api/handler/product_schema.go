package handler

import "github.com/storefront/catalog-api/internal/core/domain"

// productView is the normalized public projection of a product: the storage
// identifier becomes product_id and internal bookkeeping is excluded.
type productView struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Image       string  `json:"image,omitempty"`
	CreatedBy   string  `json:"created_by"`
}

type productListResponse struct {
	Success bool          `json:"success"`
	List    []productView `json:"list"`
}

type productResponse struct {
	Success bool        `json:"success"`
	Product productView `json:"product"`
}

type productMutationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Product productView `json:"product"`
}

type productDeleteResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DeletedID string `json:"deletedId"`
}

func normalizeProduct(p *domain.Product) productView {
	return productView{
		ProductID:   p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Discount:    p.Discount,
		UnitPrice:   p.UnitPrice,
		Total:       p.Total,
		Image:       p.Image,
		CreatedBy:   p.CreatedBy,
	}
}
