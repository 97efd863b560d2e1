package ports

import (
	"context"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

// CartService owns the cart aggregate: every mutation runs atomically against
// the user's single active cart and concludes with a full total recompute.
type CartService interface {
	Get(ctx context.Context, userID int) (*domain.Cart, error)
	// AddItem merges into an existing line (quantity += n) or inserts a new
	// line with the current catalog price as its snapshot. quantity <= 0 is
	// treated as 1.
	AddItem(ctx context.Context, userID, productID, quantity int) (*domain.Cart, error)
	// SetQuantity replaces the line quantity; <= 0 removes the line.
	SetQuantity(ctx context.Context, userID, productID, quantity int) (*domain.Cart, error)
	// RemoveItem deletes the line if present. Removing an absent line is not
	// an error.
	RemoveItem(ctx context.Context, userID, productID int) (*domain.Cart, error)
	// Clear deletes all lines and resets the total to zero. The cart row and
	// its active flag are kept; only checkout retires the row.
	Clear(ctx context.Context, userID int) (*domain.Cart, error)
}
