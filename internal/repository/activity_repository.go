package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// ActivityRepository reads the three activity sources of an author's feed.
// Each source is an independent bounded query; merging happens in the service.
type ActivityRepository interface {
	FindCommentsOnAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.CommentActivity, error)
	FindLikesOnAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.LikeActivity, error)
	FindPublishedByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.PostActivity, error)
}

type activityRepositoryImpl struct {
	db *gorm.DB
}

// NewActivityRepository creates a new instance of ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

func (r *activityRepositoryImpl) FindCommentsOnAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.CommentActivity, error) {
	var rows []domain.CommentActivity
	if err := r.db.WithContext(ctx).
		Table("comments").
		Select(`comments.id AS comment_id, comments.content AS content, comments.created_at AS created_at,
			posts.id AS post_id, posts.title AS post_title,
			users.name AS author_name, users.avatar AS author_avatar`).
		Joins("JOIN posts ON posts.id = comments.post_id").
		Joins("LEFT JOIN users ON users.id = comments.author_id").
		Where("posts.author_id = ?", authorID).
		Order("comments.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *activityRepositoryImpl) FindLikesOnAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.LikeActivity, error) {
	var rows []domain.LikeActivity
	if err := r.db.WithContext(ctx).
		Table("post_likes").
		Select(`post_likes.id AS like_id, post_likes.created_at AS created_at,
			posts.id AS post_id, posts.title AS post_title,
			users.name AS liker_name, users.avatar AS liker_avatar`).
		Joins("JOIN posts ON posts.id = post_likes.post_id").
		Joins("LEFT JOIN users ON users.id = post_likes.user_id").
		Where("posts.author_id = ?", authorID).
		Order("post_likes.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *activityRepositoryImpl) FindPublishedByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.PostActivity, error) {
	var rows []domain.PostActivity
	if err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id AS post_id, posts.title AS post_title, posts.created_at AS created_at").
		Where("posts.author_id = ? AND posts.published = ?", authorID, true).
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
