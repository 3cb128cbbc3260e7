package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

// CategoryService defines the interface for category business logic
type CategoryService interface {
	EnsureDefaults(ctx context.Context) error
	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	Resolve(ctx context.Context, valueOrLabel string) (*dto.CategoryResponse, error)
	GetCategoryStats(ctx context.Context) ([]*dto.CategoryStatsResponse, error)
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	postRepo     repository.PostRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository, postRepo repository.PostRepository, logger *zap.Logger) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
		logger:       logger,
	}
}

// defaultCategories returns the system categories in display order
func defaultCategories() []*domain.Category {
	return []*domain.Category{
		{Value: "tech", Label: "Technology", Color: "bg-blue-100 text-blue-800", Description: "Programming, AI, software development", DisplayOrder: 1, IsSystemDefault: true},
		{Value: "lifestyle", Label: "Lifestyle", Color: "bg-pink-100 text-pink-800", Description: "Health, wellness, daily life", DisplayOrder: 2, IsSystemDefault: true},
		{Value: "work", Label: "Work", Color: "bg-purple-100 text-purple-800", Description: "Career, productivity, business", DisplayOrder: 3, IsSystemDefault: true},
		{Value: "travel", Label: "Travel", Color: "bg-green-100 text-green-800", Description: "Adventures, destinations, culture", DisplayOrder: 4, IsSystemDefault: true},
		{Value: "food", Label: "Food", Color: "bg-orange-100 text-orange-800", Description: "Recipes, restaurants, cooking", DisplayOrder: 5, IsSystemDefault: true},
		{Value: "personal", Label: "Personal", Color: "bg-gray-100 text-gray-800", Description: "Thoughts, experiences, reflections", DisplayOrder: 6, IsSystemDefault: true},
	}
}

// EnsureDefaults inserts the system categories that are not stored yet
func (s *categoryServiceImpl) EnsureDefaults(ctx context.Context) error {
	existing, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch categories", err.Error())
	}

	stored := make(map[string]bool, len(existing))
	for _, c := range existing {
		stored[c.Value] = true
	}

	missing := make([]*domain.Category, 0)
	for _, c := range defaultCategories() {
		if !stored[c.Value] {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if err := s.categoryRepo.CreateBatch(ctx, missing); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to create default categories", err.Error())
	}

	s.logger.Info("Default categories created", zap.Int("count", len(missing)))
	return nil
}

// ListCategories returns every category in display order
func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch categories", err.Error())
	}

	responses := make([]*dto.CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = toCategoryResponse(c)
	}
	return responses, nil
}

// Resolve finds a category by value or label, ignoring case
func (s *categoryServiceImpl) Resolve(ctx context.Context, valueOrLabel string) (*dto.CategoryResponse, error) {
	key := strings.TrimSpace(valueOrLabel)
	if key == "" {
		return nil, response.NewValidationError("Category is required", "")
	}

	category, err := s.categoryRepo.FindByValueOrLabel(ctx, key)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch category", err.Error())
	}
	if category == nil {
		return nil, response.NewNotFoundError("Category not found", key)
	}
	return toCategoryResponse(category), nil
}

// GetCategoryStats returns each category with its published post count, zero included
func (s *categoryServiceImpl) GetCategoryStats(ctx context.Context) ([]*dto.CategoryStatsResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch categories", err.Error())
	}

	counts, err := s.postRepo.CountPublishedByCategory(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count posts", err.Error())
	}

	stats := make([]*dto.CategoryStatsResponse, len(categories))
	for i, c := range categories {
		stats[i] = &dto.CategoryStatsResponse{
			Value: c.Value,
			Label: c.Label,
			Color: c.Color,
			Count: counts[c.Value],
		}
	}
	return stats, nil
}

func toCategoryResponse(c *domain.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Value:        c.Value,
		Label:        c.Label,
		Color:        c.Color,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
	}
}
