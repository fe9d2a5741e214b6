package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Derived holds the pricing fields computed from price, discount and quantity.
type Derived struct {
	UnitPrice float64
	Total     float64
}

// ComputeDerived derives the effective unit price and line total:
//
//	unit_price = price − price × discount / 100
//	total      = quantity × unit_price
//
// Pure computation, no I/O. Range validation of the inputs is a caller
// concern; negative or out-of-range values are computed as given.
func ComputeDerived(price, discount float64, quantity int) Derived {
	unitPrice := price - price*discount/100
	return Derived{
		UnitPrice: unitPrice,
		Total:     float64(quantity) * unitPrice,
	}
}

// ParseAmount coerces a textual numeric field (price, discount) to a finite
// float64. Returns ErrValidation when the text does not parse or is not finite.
func ParseAmount(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be numeric", ErrValidation, field)
	}
	return v, nil
}

// ParseQuantity coerces a textual quantity field to an integer.
func ParseQuantity(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity must be numeric", ErrValidation)
	}
	return v, nil
}
