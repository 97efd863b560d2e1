package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shoplane/commerce-api/internal/core/domain"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

// CategoryService implements category management. Slug and reference are
// derived from the name at creation time.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, domain.ErrCategoryExists
	}

	slug := slugify(name)
	category := &domain.Category{
		Name:      name,
		Slug:      slug,
		Reference: slug,
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("category_id", created.ID).Str("slug", created.Slug).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.FindByName(ctx, name); err == nil && existing.ID != id {
		return nil, domain.ErrCategoryExists
	}

	category.Name = name
	category.Slug = slugify(name)
	return s.repo.Update(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// slugify lowercases the name and collapses whitespace runs into hyphens.
func slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
