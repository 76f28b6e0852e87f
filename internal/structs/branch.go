package structs

import "time"

// Branch is a physical pickup location. The table mirrors the static
// configuration after every startup reseed.
type Branch struct {
	ID          int64     `json:"id"`
	BranchID    string    `json:"branch_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
