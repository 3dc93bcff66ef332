package service

import (
	"fmt"

	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/errorz"
	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
)

type CategoryService interface {
	ListCategories() (*dto.CategoryListResponse, error)
	// SeedDefaults inserts model.DefaultCategories when the table is empty and reports how many were added.
	SeedDefaults() (int, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories() (*dto.CategoryListResponse, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load categories")
		return nil, fmt.Errorf("load categories: %w: %w", errorz.ErrInternal, err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories: %w", errorz.ErrNotFound)
	}

	formatted := formatCategories(categories)
	return &dto.CategoryListResponse{
		Success:         true,
		Categories:      formatted,
		TotalCategories: len(formatted),
	}, nil
}

func (s *categoryService) SeedDefaults() (int, error) {
	count, err := s.repo.Count()
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		log.Info().Int64("existing", count).Msg("Categories already present, skipping seed")
		return 0, nil
	}

	categories := make([]model.Category, 0, len(model.DefaultCategories))
	for _, name := range model.DefaultCategories {
		categories = append(categories, model.Category{Type: name})
	}
	if err := s.repo.CreateAll(categories); err != nil {
		return 0, fmt.Errorf("seed categories: %w", err)
	}
	log.Info().Int("count", len(categories)).Msg("Seeded default categories")
	return len(categories), nil
}
