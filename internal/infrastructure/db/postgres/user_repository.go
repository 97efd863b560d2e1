package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := userModel{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]domain.User, len(models))
	for i := range models {
		users[i] = *models[i].toDomain()
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int, name, email string) (*domain.User, error) {
	updates := map[string]any{}
	if name != "" {
		updates["name"] = name
	}
	if email != "" {
		updates["email"] = email
	}

	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if res.Error != nil {
		return fmt.Errorf("update user password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&userModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
