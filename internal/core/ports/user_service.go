package ports

import (
	"context"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

// CreateUserInput carries the fields for admin-driven user creation. Role may
// be USER or ADMIN; registration through AuthService always yields USER.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int, name, email string) (*domain.User, error)
	// UpdatePassword re-checks the current password before storing the new hash.
	UpdatePassword(ctx context.Context, id int, currentPassword, newPassword string) error
	Delete(ctx context.Context, id int) error
}
