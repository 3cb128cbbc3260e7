package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// ImageRepository defines the interface for uploaded image data access
type ImageRepository interface {
	Create(ctx context.Context, image *domain.Image) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	ConfirmByURL(ctx context.Context, fileURL string, postID uuid.UUID) (int64, error)
	FindExpiredTemp(ctx context.Context, now time.Time) ([]*domain.Image, error)
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error
}

type imageRepositoryImpl struct {
	db *gorm.DB
}

// NewImageRepository creates a new instance of ImageRepository
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepositoryImpl{db: db}
}

func (r *imageRepositoryImpl) Create(ctx context.Context, image *domain.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	var image domain.Image
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// ConfirmByURL attaches the TEMP image with that URL to a post.
// Returns the number of images confirmed; zero is not an error.
func (r *imageRepositoryImpl) ConfirmByURL(ctx context.Context, fileURL string, postID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Image{}).
		Where("file_url = ? AND status = ?", fileURL, domain.ImageStatusTemp).
		Updates(map[string]interface{}{
			"status":     domain.ImageStatusConfirmed,
			"post_id":    postID,
			"expires_at": nil,
		})
	return result.RowsAffected, result.Error
}

// FindExpiredTemp returns TEMP images whose expiry is before now
func (r *imageRepositoryImpl) FindExpiredTemp(ctx context.Context, now time.Time) ([]*domain.Image, error) {
	var images []*domain.Image
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", domain.ImageStatusTemp, now).
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepositoryImpl) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&domain.Image{}).Error
}
