package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoplane/commerce-api/internal/core/domain"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

// OrderService lists orders and settles carts into orders at checkout.
type OrderService struct {
	orders ports.OrderRepository
	carts  ports.CartRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, carts ports.CartRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, carts: carts, logger: logger}
}

func (s *OrderService) ListForUser(ctx context.Context, userID int) ([]domain.Order, error) {
	return s.orders.ListByUserID(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListAll(ctx)
}

// Checkout turns the user's active cart into an order. Order lines copy the
// cart's snapshot prices; the cart row is deleted in the same transaction, so
// a failed insert leaves the cart untouched.
func (s *OrderService) Checkout(ctx context.Context, userID int) (*domain.Order, error) {
	var out *domain.Order
	err := s.carts.Mutate(ctx, func(tx ports.CartTx) error {
		cart, err := tx.FindActiveCart(userID)
		if err != nil {
			return err
		}

		items, err := tx.Items(cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return domain.ErrCartEmpty
		}

		order := &domain.Order{
			UserID:    userID,
			Total:     domain.ItemsTotal(items),
			Status:    domain.OrderStatusPending,
			CreatedAt: time.Now().UTC(),
		}
		for _, it := range items {
			order.Items = append(order.Items, domain.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}

		created, err := tx.InsertOrder(order)
		if err != nil {
			return err
		}

		if err := tx.DeleteAllItems(cart.ID); err != nil {
			return err
		}
		if err := tx.DeleteCart(cart.ID); err != nil {
			return err
		}

		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("user_id", userID).
		Int("order_id", out.ID).
		Float64("total", out.Total).
		Msg("cart checked out")

	return out, nil
}
