package domain

import "time"

// Product is a catalog entry. UnitPrice and Total are derived from Price,
// Discount and Quantity and are recomputed on every write; they are never
// set independently of their inputs.
type Product struct {
	ID          string    `json:"product_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Discount    float64   `json:"discount"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
	Image       string    `json:"image,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Recompute refreshes the derived pricing fields from the current inputs.
func (p *Product) Recompute() {
	d := ComputeDerived(p.Price, p.Discount, p.Quantity)
	p.UnitPrice = d.UnitPrice
	p.Total = d.Total
}
