package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shoplane/commerce-api/internal/core/domain"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

// CartService owns the cart aggregate. Every mutation runs inside a single
// repository transaction: lookup-or-create the cart, mutate the line, then
// recompute the stored total from all current lines. The recompute is always
// a full sum, never an increment, so a partially failed or concurrent
// mutation can never leave the total drifted from the lines.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	prices   ports.PriceCache
	logger   zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, prices ports.PriceCache, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, prices: prices, logger: logger}
}

// Get returns the user's active cart with its items.
func (s *CartService) Get(ctx context.Context, userID int) (*domain.Cart, error) {
	return s.carts.FindActiveByUserID(ctx, userID)
}

// AddItem adds quantity units of a product to the active cart, creating the
// cart lazily. An existing line is incremented; a new line snapshots the
// current catalog price. The product must resolve to a price before anything
// is written.
func (s *CartService) AddItem(ctx context.Context, userID, productID, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	unitPrice, err := s.lookupPrice(ctx, productID)
	if err != nil {
		return nil, err
	}

	var out *domain.Cart
	err = s.carts.Mutate(ctx, func(tx ports.CartTx) error {
		cart, err := tx.FindActiveCart(userID)
		if errors.Is(err, domain.ErrCartNotFound) {
			cart, err = tx.CreateCart(userID)
		}
		if err != nil {
			return err
		}

		item, err := tx.FindItem(cart.ID, productID)
		switch {
		case err == nil:
			if err := tx.UpdateItemQuantity(item.ID, item.Quantity+quantity); err != nil {
				return err
			}
		case errors.Is(err, domain.ErrCartItemNotFound):
			line := &domain.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
				UnitPrice: unitPrice,
			}
			if err := tx.InsertItem(line); err != nil {
				return err
			}
		default:
			return err
		}

		out, err = recomputeTotal(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("user_id", userID).
		Int("product_id", productID).
		Int("quantity", quantity).
		Float64("total", out.Total).
		Msg("cart item added")

	return out, nil
}

// SetQuantity replaces a line's quantity. A non-positive quantity removes the
// line instead. The line must already exist.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	var out *domain.Cart
	err := s.carts.Mutate(ctx, func(tx ports.CartTx) error {
		cart, err := tx.FindActiveCart(userID)
		if err != nil {
			return err
		}

		item, err := tx.FindItem(cart.ID, productID)
		if err != nil {
			return err
		}
		if err := tx.UpdateItemQuantity(item.ID, quantity); err != nil {
			return err
		}

		out, err = recomputeTotal(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveItem deletes the line for productID if present. Removing an absent
// line leaves the cart unchanged and is not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID int) (*domain.Cart, error) {
	var out *domain.Cart
	err := s.carts.Mutate(ctx, func(tx ports.CartTx) error {
		cart, err := tx.FindActiveCart(userID)
		if err != nil {
			return err
		}

		if err := tx.DeleteItem(cart.ID, productID); err != nil {
			return err
		}

		out, err = recomputeTotal(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Clear removes every line and resets the total to zero. The cart row stays
// active; only checkout retires it.
func (s *CartService) Clear(ctx context.Context, userID int) (*domain.Cart, error) {
	var out *domain.Cart
	err := s.carts.Mutate(ctx, func(tx ports.CartTx) error {
		cart, err := tx.FindActiveCart(userID)
		if err != nil {
			return err
		}

		if err := tx.DeleteAllItems(cart.ID); err != nil {
			return err
		}

		out, err = recomputeTotal(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", userID).Msg("cart cleared")
	return out, nil
}

// lookupPrice resolves the unit price snapshot for a new line: cache first,
// catalog on a miss.
func (s *CartService) lookupPrice(ctx context.Context, productID int) (float64, error) {
	if price, ok := s.prices.GetPrice(ctx, productID); ok {
		return price, nil
	}

	price, err := s.products.FindPrice(ctx, productID)
	if err != nil {
		return 0, err
	}
	s.prices.SetPrice(ctx, productID, price)
	return price, nil
}

// recomputeTotal reads all current lines, sums quantity × unit price and
// writes the result back. Returns the cart with fresh items and total.
func recomputeTotal(tx ports.CartTx, cart *domain.Cart) (*domain.Cart, error) {
	items, err := tx.Items(cart.ID)
	if err != nil {
		return nil, err
	}

	total := domain.ItemsTotal(items)
	if err := tx.UpdateTotal(cart.ID, total); err != nil {
		return nil, err
	}

	cart.Items = items
	cart.Total = total
	return cart, nil
}
