package domain

import "time"

// Cart is the aggregate root for a user's shopping session. A user has at
// most one active cart at a time; it is created lazily on the first add.
// Total is derived: outside an in-flight mutation it always equals
// Σ item.Quantity × item.UnitPrice over the cart's items.
type Cart struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	IsActive  bool       `json:"is_active"`
	Total     float64    `json:"total"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one product line within a cart. There is at most one line per
// (cart, product) pair; adding the same product again increments Quantity.
// UnitPrice is the price snapshot taken when the line was first added.
type CartItem struct {
	ID        int     `json:"id"`
	CartID    int     `json:"cart_id"`
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// ItemsTotal sums quantity × unit price over items. Used by the recompute
// step after every mutation; the stored total is never patched incrementally.
func ItemsTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}
