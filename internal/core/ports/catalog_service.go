package ports

import (
	"context"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

// CreateProductInput carries the fields for product creation. CategoryID is
// optional; when set the category must exist.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Reference   string
	Images      []string
	CategoryID  *int
}

// UpdateProductInput carries a full product update (id from the path).
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Images      []string
	CategoryID  *int
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	GetByReference(ctx context.Context, reference string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id int, name string) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}
