package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoplane/commerce-api/internal/core/domain"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

// ProductService implements catalog reads and admin catalog management.
type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	prices     ports.PriceCache
	logger     zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, prices ports.PriceCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, prices: prices, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) GetByReference(ctx context.Context, reference string) (*domain.Product, error) {
	if reference == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.FindByReference(ctx, reference)
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Reference == "" || input.Price < 0 {
		return nil, domain.ErrInvalidInput
	}

	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	if _, err := s.repo.FindByReference(ctx, input.Reference); err == nil {
		return nil, domain.ErrProductExists
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Reference:   input.Reference,
		Images:      input.Images,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("product_id", created.ID).Str("reference", created.Reference).Msg("product created")
	return created, nil
}

// Update replaces the mutable fields and invalidates any cached price so new
// cart lines snapshot the fresh value. Lines already in carts keep their old
// snapshot.
func (s *ProductService) Update(ctx context.Context, id int, input ports.UpdateProductInput) (*domain.Product, error) {
	if input.Price < 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.Images = input.Images
	product.CategoryID = input.CategoryID
	product.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}

	s.prices.Invalidate(ctx, id)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.prices.Invalidate(ctx, id)
	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}
