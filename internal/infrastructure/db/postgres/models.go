package postgres

import (
	"encoding/json"
	"time"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

type userModel struct {
	ID           int    `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	Name         string `gorm:"size:255"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:16;not null;default:USER"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type categoryModel struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	Slug      string `gorm:"size:255;not null"`
	Reference string `gorm:"size:255;not null"`
}

func (categoryModel) TableName() string { return "categories" }

type productModel struct {
	ID          int     `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Stock       int     `gorm:"not null;default:0"`
	Reference   string  `gorm:"uniqueIndex;size:255;not null"`
	// Images holds a JSON-encoded string array, mirroring how the client
	// submits them.
	Images     string `gorm:"type:text"`
	CategoryID *int   `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (productModel) TableName() string { return "products" }

type cartModel struct {
	ID        int             `gorm:"primaryKey"`
	UserID    int             `gorm:"index;not null"`
	IsActive  bool            `gorm:"not null;default:true"`
	Total     float64         `gorm:"not null;default:0"`
	Items     []cartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (cartModel) TableName() string { return "carts" }

type cartItemModel struct {
	ID        int     `gorm:"primaryKey"`
	CartID    int     `gorm:"uniqueIndex:idx_cart_items_cart_product;not null"`
	ProductID int     `gorm:"uniqueIndex:idx_cart_items_cart_product;not null"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
}

func (cartItemModel) TableName() string { return "cart_items" }

type orderModel struct {
	ID        int              `gorm:"primaryKey"`
	UserID    int              `gorm:"index;not null"`
	Total     float64          `gorm:"not null"`
	Status    string           `gorm:"size:16;not null"`
	Items     []orderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (orderModel) TableName() string { return "orders" }

type orderItemModel struct {
	ID        int     `gorm:"primaryKey"`
	OrderID   int     `gorm:"index;not null"`
	ProductID int     `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
}

func (orderItemModel) TableName() string { return "order_items" }

// --- model ↔ domain converters ---

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (m *categoryModel) toDomain() *domain.Category {
	return &domain.Category{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		Reference: m.Reference,
	}
}

func (m *productModel) toDomain() *domain.Product {
	var images []string
	if m.Images != "" {
		// A corrupt images column degrades to an empty list rather than
		// failing the read.
		_ = json.Unmarshal([]byte(m.Images), &images)
	}
	return &domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		Reference:   m.Reference,
		Images:      images,
		CategoryID:  m.CategoryID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func encodeImages(images []string) string {
	if len(images) == 0 {
		return "[]"
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func (m *cartModel) toDomain() *domain.Cart {
	items := make([]domain.CartItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = *it.toDomain()
	}
	return &domain.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		IsActive:  m.IsActive,
		Total:     m.Total,
		Items:     items,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m *cartItemModel) toDomain() *domain.CartItem {
	return &domain.CartItem{
		ID:        m.ID,
		CartID:    m.CartID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
	}
}

func (m *orderModel) toDomain() *domain.Order {
	items := make([]domain.OrderItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.OrderItem{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return &domain.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		Total:     m.Total,
		Status:    domain.OrderStatus(m.Status),
		Items:     items,
		CreatedAt: m.CreatedAt,
	}
}
