package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

type stubCategoryRepo struct {
	nextID     int
	categories map[int]*domain.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{nextID: 1, categories: make(map[int]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	clone := *c
	clone.ID = r.nextID
	r.nextID++
	stored := clone
	r.categories[clone.ID] = &stored
	return &clone, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id int) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) (*domain.Category, error) {
	if _, ok := r.categories[c.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	r.categories[c.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func TestCategoryService_Create_DerivesSlug(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	category, err := svc.Create(context.Background(), "  Home   Audio  ")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if category.Name != "Home   Audio" {
		t.Fatalf("expected trimmed name, got %q", category.Name)
	}
	if category.Slug != "home-audio" {
		t.Fatalf("expected slug home-audio, got %q", category.Slug)
	}
	if category.Reference != category.Slug {
		t.Fatalf("expected reference to match slug, got %q", category.Reference)
	}
}

func TestCategoryService_Create_Duplicate(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), "Books"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "Books"); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryService_Update_RenameKeepsID(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "Books")
	updated, err := svc.Update(context.Background(), created.ID, "Used Books")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, updated.ID)
	}
	if updated.Slug != "used-books" {
		t.Fatalf("expected slug used-books, got %q", updated.Slug)
	}
}

func TestCategoryService_Update_NameConflict(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	_, _ = svc.Create(context.Background(), "Books")
	other, _ := svc.Create(context.Background(), "Music")

	if _, err := svc.Update(context.Background(), other.ID, "Books"); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}
