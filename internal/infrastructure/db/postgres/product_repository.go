package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	m := productModel{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Reference:   p.Reference,
		Images:      encodeImages(p.Images),
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrProductExists
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	var m productModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ProductRepository) FindByReference(ctx context.Context, reference string) (*domain.Product, error) {
	var m productModel
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product by reference: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var models []productModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := make([]domain.Product, len(models))
	for i := range models {
		products[i] = *models[i].toDomain()
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	updates := map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       p.Stock,
		"images":      encodeImages(p.Images),
		"category_id": p.CategoryID,
		"updated_at":  p.UpdatedAt,
	}
	res := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", p.ID).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrProductNotFound
	}
	return r.FindByID(ctx, p.ID)
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&productModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) FindPrice(ctx context.Context, id int) (float64, error) {
	var m productModel
	err := r.db.WithContext(ctx).Select("id", "price").First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrProductNotFound
		}
		return 0, fmt.Errorf("find product price: %w", err)
	}
	return m.Price, nil
}
