package ports

import (
	"context"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

type OrderService interface {
	ListForUser(ctx context.Context, userID int) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	// Checkout settles the user's active cart into an order and deletes the
	// cart row, all in one transaction. ErrCartNotFound / ErrCartEmpty when
	// there is nothing to settle.
	Checkout(ctx context.Context, userID int) (*domain.Order, error)
}
