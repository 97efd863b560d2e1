package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	var m orderModel
	err := r.db.WithContext(ctx).Preload("Items").First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return m.toDomain(), nil
}

func (r *OrderRepository) ListByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	var models []orderModel
	err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list orders for user: %w", err)
	}
	return toOrders(models), nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	var models []orderModel
	err := r.db.WithContext(ctx).Preload("Items").Order("id DESC").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return toOrders(models), nil
}

func toOrders(models []orderModel) []domain.Order {
	orders := make([]domain.Order, len(models))
	for i := range models {
		orders[i] = *models[i].toDomain()
	}
	return orders
}
