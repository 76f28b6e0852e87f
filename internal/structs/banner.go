package structs

import "time"

// Banner names form a fixed set seeded at startup: main, catalog, cart,
// about, payment, shipping, registration, order.
type Banner struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
