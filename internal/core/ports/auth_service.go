package ports

import (
	"context"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
