package ports

import (
	"context"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

// ProductRepository defines persistence operations for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	FindByReference(ctx context.Context, reference string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
	// FindPrice returns the current catalog price. ErrProductNotFound when absent.
	FindPrice(ctx context.Context, id int) (float64, error)
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id int) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}
