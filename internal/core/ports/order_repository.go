package ports

import (
	"context"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

// OrderRepository defines read operations for orders. Order creation happens
// through CartTx.InsertOrder so it shares the checkout transaction.
type OrderRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}
