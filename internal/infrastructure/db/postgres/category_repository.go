package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	m := categoryModel{Name: c.Name, Slug: c.Slug, Reference: c.Reference}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return m.toDomain(), nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int) (*domain.Category, error) {
	var m categoryModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return m.toDomain(), nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var m categoryModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return m.toDomain(), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var models []categoryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]domain.Category, len(models))
	for i := range models {
		categories[i] = *models[i].toDomain()
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	updates := map[string]any{"name": c.Name, "slug": c.Slug, "reference": c.Reference}
	res := r.db.WithContext(ctx).Model(&categoryModel{}).Where("id = ?", c.ID).Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return r.FindByID(ctx, c.ID)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&categoryModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
