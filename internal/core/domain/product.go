package domain

import "time"

// Product is a catalog entry. Price is the current catalog price; cart lines
// snapshot it at add time and are not affected by later changes.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Reference   string    `json:"reference"`
	Images      []string  `json:"images"`
	CategoryID  *int      `json:"category_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category groups products. Slug and Reference are derived from the name.
type Category struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Reference string `json:"reference"`
}
