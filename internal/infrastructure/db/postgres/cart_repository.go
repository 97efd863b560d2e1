package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shoplane/commerce-api/internal/core/domain"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

// CartRepository implements the cart port. Mutations run inside a database
// transaction with the cart row locked FOR UPDATE, serializing concurrent
// mutations of the same cart across processes.
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) FindActiveByUserID(ctx context.Context, userID int) (*domain.Cart, error) {
	var m cartModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find active cart: %w", err)
	}
	return m.toDomain(), nil
}

func (r *CartRepository) Mutate(ctx context.Context, fn func(tx ports.CartTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&cartTx{db: tx})
	})
}

// cartTx binds the cart mutation primitives to one transaction.
type cartTx struct {
	db *gorm.DB
}

func (t *cartTx) FindActiveCart(userID int) (*domain.Cart, error) {
	var m cartModel
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("lock active cart: %w", err)
	}
	return m.toDomain(), nil
}

func (t *cartTx) CreateCart(userID int) (*domain.Cart, error) {
	// The one-active-cart invariant is enforced here, not by a constraint:
	// re-check under the transaction before inserting.
	var count int64
	if err := t.db.Model(&cartModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count active carts: %w", err)
	}
	if count > 0 {
		return t.FindActiveCart(userID)
	}

	m := cartModel{UserID: userID, IsActive: true, Total: 0}
	if err := t.db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert cart: %w", err)
	}
	return m.toDomain(), nil
}

func (t *cartTx) DeleteCart(cartID int) error {
	if err := t.db.Delete(&cartModel{}, cartID).Error; err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

func (t *cartTx) FindItem(cartID, productID int) (*domain.CartItem, error) {
	var m cartItemModel
	err := t.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return m.toDomain(), nil
}

func (t *cartTx) InsertItem(item *domain.CartItem) error {
	m := cartItemModel{
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
	}
	if err := t.db.Create(&m).Error; err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	item.ID = m.ID
	return nil
}

func (t *cartTx) UpdateItemQuantity(itemID, quantity int) error {
	res := t.db.Model(&cartItemModel{}).Where("id = ?", itemID).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("update cart item quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (t *cartTx) DeleteItem(cartID, productID int) error {
	// Idempotent: deleting an absent line is fine.
	err := t.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&cartItemModel{}).Error
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

func (t *cartTx) DeleteAllItems(cartID int) error {
	if err := t.db.Where("cart_id = ?", cartID).Delete(&cartItemModel{}).Error; err != nil {
		return fmt.Errorf("delete cart items: %w", err)
	}
	return nil
}

func (t *cartTx) Items(cartID int) ([]domain.CartItem, error) {
	var models []cartItemModel
	if err := t.db.Where("cart_id = ?", cartID).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	items := make([]domain.CartItem, len(models))
	for i := range models {
		items[i] = *models[i].toDomain()
	}
	return items, nil
}

func (t *cartTx) UpdateTotal(cartID int, total float64) error {
	res := t.db.Model(&cartModel{}).Where("id = ?", cartID).Update("total", total)
	if res.Error != nil {
		return fmt.Errorf("update cart total: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}

func (t *cartTx) InsertOrder(order *domain.Order) (*domain.Order, error) {
	m := orderModel{
		UserID:    order.UserID,
		Total:     order.Total,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
	for _, it := range order.Items {
		m.Items = append(m.Items, orderItemModel{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	if err := t.db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return m.toDomain(), nil
}
