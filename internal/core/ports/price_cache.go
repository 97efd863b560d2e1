package ports

import "context"

// PriceCache fronts catalog price lookups on the cart hot path. Implementations
// must degrade to a miss on backend errors; the catalog stays authoritative.
type PriceCache interface {
	GetPrice(ctx context.Context, productID int) (float64, bool)
	SetPrice(ctx context.Context, productID int, price float64)
	// Invalidate drops a cached price after a catalog update.
	Invalidate(ctx context.Context, productID int)
}
