package service

import (
	"context"
	"strings"
	"time"

	"github.com/shoplane/commerce-api/internal/core/auth"
	"github.com/shoplane/commerce-api/internal/core/domain"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	codec  *auth.Codec
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, codec *auth.Codec) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec}
}

// Register creates a USER account. Duplicate emails fail with ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
