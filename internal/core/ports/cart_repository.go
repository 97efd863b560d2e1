package ports

import (
	"context"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

// CartTx exposes the mutation primitives available inside one atomic cart
// scope. Implementations bind every call to the surrounding transaction so a
// failed step rolls the whole mutation back.
type CartTx interface {
	// FindActiveCart returns the user's active cart without items, locked for
	// the duration of the transaction. ErrCartNotFound when there is none.
	FindActiveCart(userID int) (*domain.Cart, error)
	CreateCart(userID int) (*domain.Cart, error)
	DeleteCart(cartID int) error

	// FindItem returns the line for (cartID, productID).
	// ErrCartItemNotFound when the product is not in the cart.
	FindItem(cartID, productID int) (*domain.CartItem, error)
	InsertItem(item *domain.CartItem) error
	UpdateItemQuantity(itemID, quantity int) error
	DeleteItem(cartID, productID int) error
	DeleteAllItems(cartID int) error
	Items(cartID int) ([]domain.CartItem, error)

	UpdateTotal(cartID int, total float64) error

	// InsertOrder persists an order with its lines. Exposed here so checkout
	// can settle the cart and create the order in one atomic unit.
	InsertOrder(order *domain.Order) (*domain.Order, error)
}

// CartRepository defines persistence operations for carts. Mutations never
// run outside Mutate: per-cart serialization lives at the persistence
// boundary, not in process-local locks.
type CartRepository interface {
	// FindActiveByUserID returns the active cart with its items (read-only).
	FindActiveByUserID(ctx context.Context, userID int) (*domain.Cart, error)
	// Mutate runs fn inside a transaction scoped to the user's cart. Any
	// error from fn aborts the transaction; partial application is never
	// observable.
	Mutate(ctx context.Context, fn func(tx CartTx) error) error
}
