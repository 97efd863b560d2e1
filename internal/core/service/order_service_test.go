package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

type stubOrderRepo struct {
	orders []domain.Order
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			clone := o
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) ListByUserID(_ context.Context, userID int) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	return r.orders, nil
}

func TestOrderService_Checkout(t *testing.T) {
	store := newMemCartStore()
	cartSvc := newCartTestService(store, map[int]float64{10: 10.00, 11: 5.00})
	svc := NewOrderService(&stubOrderRepo{}, store, zerolog.Nop())

	_, _ = cartSvc.AddItem(context.Background(), 1, 10, 2)
	_, _ = cartSvc.AddItem(context.Background(), 1, 11, 3)

	order, err := svc.Checkout(context.Background(), 1)
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("expected order id to be assigned")
	}
	if order.Status != domain.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.Total != 35.00 {
		t.Fatalf("expected total 35.00, got %v", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order lines, got %d", len(order.Items))
	}

	// Checkout retires the cart row entirely.
	if _, err := store.FindActiveCart(1); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected cart to be gone after checkout, got %v", err)
	}
	if len(store.items) != 0 {
		t.Fatalf("expected cart items to be deleted, got %d", len(store.items))
	}
}

func TestOrderService_Checkout_CopiesSnapshotPrices(t *testing.T) {
	store := newMemCartStore()
	prices := map[int]float64{10: 10.00}
	cartSvc := newCartTestService(store, prices)
	svc := NewOrderService(&stubOrderRepo{}, store, zerolog.Nop())

	_, _ = cartSvc.AddItem(context.Background(), 1, 10, 1)
	prices[10] = 99.00 // catalog moved after the line was added

	order, err := svc.Checkout(context.Background(), 1)
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if order.Items[0].UnitPrice != 10.00 {
		t.Fatalf("expected order line to keep snapshot 10.00, got %v", order.Items[0].UnitPrice)
	}
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	store := newMemCartStore()
	cartSvc := newCartTestService(store, map[int]float64{10: 10.00})
	svc := NewOrderService(&stubOrderRepo{}, store, zerolog.Nop())

	_, _ = cartSvc.AddItem(context.Background(), 1, 10, 1)
	_, _ = cartSvc.Clear(context.Background(), 1)

	if _, err := svc.Checkout(context.Background(), 1); !errors.Is(err, domain.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestOrderService_Checkout_NoCart(t *testing.T) {
	store := newMemCartStore()
	svc := NewOrderService(&stubOrderRepo{}, store, zerolog.Nop())

	if _, err := svc.Checkout(context.Background(), 1); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestOrderService_ListForUser(t *testing.T) {
	repo := &stubOrderRepo{orders: []domain.Order{
		{ID: 1, UserID: 1},
		{ID: 2, UserID: 2},
		{ID: 3, UserID: 1},
	}}
	svc := NewOrderService(repo, newMemCartStore(), zerolog.Nop())

	orders, err := svc.ListForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}
