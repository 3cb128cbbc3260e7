package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindByTitle(ctx context.Context, title string) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindPublished(ctx context.Context) ([]*domain.Post, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Post, error)
	FindRelated(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*domain.Post, error)
	CountPublishedByCategory(ctx context.Context) (map[string]int64, error)
	Count(ctx context.Context) (int64, error)
}

type postRepositoryImpl struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepositoryImpl{db: db}
}

func (r *postRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepositoryImpl) FindByTitle(ctx context.Context, title string) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update saves every column, including zero values such as published=false
func (r *postRepositoryImpl) Update(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes a post with its comments, comment likes and post likes.
// Returns gorm.ErrRecordNotFound when no post had that id.
func (r *postRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&domain.Comment{}).Select("id").Where("post_id = ?", id)
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&domain.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&domain.PostLike{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Post{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *postRepositoryImpl) FindPublished(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByAuthor returns drafts and published posts of an author, newest first
func (r *postRepositoryImpl) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepositoryImpl) FindRelated(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.db.WithContext(ctx).
		Where("category = ? AND id <> ? AND published = ?", category, excludeID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepositoryImpl) CountPublishedByCategory(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Select("category, COUNT(*) AS count").
		Where("published = ?", true).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

func (r *postRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Post{}).Count(&count).Error
	return count, err
}
