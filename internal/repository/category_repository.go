package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*domain.Category, error)
	FindByValueOrLabel(ctx context.Context, valueOrLabel string) (*domain.Category, error)
	CreateBatch(ctx context.Context, categories []*domain.Category) error
}

type categoryRepositoryImpl struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

// FindAll returns every category ordered by display_order
func (r *categoryRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Category, error) {
	var categories []*domain.Category
	if err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByValueOrLabel matches case-insensitively; returns nil, nil when nothing matches
func (r *categoryRepositoryImpl) FindByValueOrLabel(ctx context.Context, valueOrLabel string) (*domain.Category, error) {
	key := strings.ToLower(strings.TrimSpace(valueOrLabel))

	var category domain.Category
	if err := r.db.WithContext(ctx).
		Where("LOWER(value) = ? OR LOWER(label) = ?", key, key).
		Order("display_order ASC").
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepositoryImpl) CreateBatch(ctx context.Context, categories []*domain.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&categories).Error
}
