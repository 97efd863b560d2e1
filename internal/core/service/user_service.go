package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoplane/commerce-api/internal/core/domain"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

// UserService implements account administration and self-service profile
// operations. Authorization happens at the transport boundary; this service
// assumes the caller was already permitted.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Create adds an account with an explicit role. Only admin callers reach
// this path; self-registration always goes through AuthService.Register.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.IsValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id int, name, email string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" && email == "" {
		return nil, domain.ErrInvalidInput
	}

	// A changed email must stay unique across accounts.
	if email != "" {
		if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing.ID != id {
			return nil, domain.ErrEmailTaken
		}
	}

	return s.repo.UpdateProfile(ctx, id, name, email)
}

// UpdatePassword re-verifies the current password before storing a new hash.
func (s *UserService) UpdatePassword(ctx context.Context, id int, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.ErrInvalidInput
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.hasher.Compare(currentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}

	s.logger.Info().Int("user_id", id).Msg("password updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("user_id", id).Msg("user deleted")
	return nil
}
