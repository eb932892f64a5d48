package registry

import "time"

// Product is a single inventory record. IDs and timestamps are assigned
// by the registry, never by the caller.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Fields holds the caller-supplied part of a product.
type Fields struct {
	Name        string
	Price       float64
	Quantity    int
	Category    string
	Description string
}

// Patch carries a partial product update. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Price       *float64
	Quantity    *int
	Category    *string
	Description *string
}
