package ports

import (
	"context"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// UpdateProfile persists name/email changes only.
	UpdateProfile(ctx context.Context, id int, name, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	Delete(ctx context.Context, id int) error
}
