package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// LikeRepository is the data access of one like table.
// The post-like and comment-like tables share it; targetID is the post or comment id.
type LikeRepository interface {
	Exists(ctx context.Context, targetID, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, targetID, userID uuid.UUID) error
	Delete(ctx context.Context, targetID, userID uuid.UUID) (int64, error)
	CountByTarget(ctx context.Context, targetID uuid.UUID) (int64, error)
	CountByTargets(ctx context.Context, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	FindLikedTargets(ctx context.Context, userID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	Count(ctx context.Context) (int64, error)
}

type likeRepositoryImpl struct {
	db        *gorm.DB
	targetCol string
	model     func() interface{}
	newRow    func(targetID, userID uuid.UUID) interface{}
}

// NewPostLikeRepository returns the LikeRepository over post_likes
func NewPostLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepositoryImpl{
		db:        db,
		targetCol: "post_id",
		model:     func() interface{} { return &domain.PostLike{} },
		newRow: func(targetID, userID uuid.UUID) interface{} {
			return &domain.PostLike{PostID: targetID, UserID: userID}
		},
	}
}

// NewCommentLikeRepository returns the LikeRepository over comment_likes
func NewCommentLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepositoryImpl{
		db:        db,
		targetCol: "comment_id",
		model:     func() interface{} { return &domain.CommentLike{} },
		newRow: func(targetID, userID uuid.UUID) interface{} {
			return &domain.CommentLike{CommentID: targetID, UserID: userID}
		},
	}
}

func (r *likeRepositoryImpl) Exists(ctx context.Context, targetID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(r.model()).
		Where(r.targetCol+" = ? AND user_id = ?", targetID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a like row. A concurrent insert of the same pair fails on the unique index.
func (r *likeRepositoryImpl) Create(ctx context.Context, targetID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Create(r.newRow(targetID, userID)).Error
}

func (r *likeRepositoryImpl) Delete(ctx context.Context, targetID, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where(r.targetCol+" = ? AND user_id = ?", targetID, userID).
		Delete(r.model())
	return result.RowsAffected, result.Error
}

func (r *likeRepositoryImpl) CountByTarget(ctx context.Context, targetID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(r.model()).
		Where(r.targetCol+" = ?", targetID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *likeRepositoryImpl) CountByTargets(ctx context.Context, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(targetIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}

	var rows []countRow
	if err := r.db.WithContext(ctx).
		Model(r.model()).
		Select(r.targetCol+" AS id, COUNT(*) AS count").
		Where(r.targetCol+" IN ?", targetIDs).
		Group(r.targetCol).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// FindLikedTargets returns which of targetIDs the user has liked
func (r *likeRepositoryImpl) FindLikedTargets(ctx context.Context, userID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool)
	if len(targetIDs) == 0 || userID == uuid.Nil {
		return liked, nil
	}

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(r.model()).
		Where(r.targetCol+" IN ? AND user_id = ?", targetIDs, userID).
		Pluck(r.targetCol, &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *likeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(r.model()).Count(&count).Error
	return count, err
}
