package structs

import "time"

// CartLine is one (user, product) row joined with its product.
// Quantity never persists at zero: reducing the last unit deletes the row.
type CartLine struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineTotal is the per-line subtotal.
func (l CartLine) LineTotal() float64 {
	return float64(l.Quantity) * l.Product.Price
}

// CartTotal sums line totals across all lines, not just the paged one.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}
