package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/cache"
	"blog-api/internal/dto"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

const (
	likeTargetPost    = "post"
	likeTargetComment = "comment"
)

// LikeService defines the interface for like toggling
type LikeService interface {
	TogglePostLike(ctx context.Context, postID, userID uuid.UUID) (*dto.ToggleLikeResponse, error)
	ToggleCommentLike(ctx context.Context, commentID, userID uuid.UUID) (*dto.ToggleLikeResponse, error)
}

type likeServiceImpl struct {
	postRepo        repository.PostRepository
	commentRepo     repository.CommentRepository
	postLikeRepo    repository.LikeRepository
	commentLikeRepo repository.LikeRepository
	postCache       cache.PostCache
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewLikeService creates a new instance of LikeService
func NewLikeService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	postLikeRepo repository.LikeRepository,
	commentLikeRepo repository.LikeRepository,
	postCache cache.PostCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) LikeService {
	return &likeServiceImpl{
		postRepo:        postRepo,
		commentRepo:     commentRepo,
		postLikeRepo:    postLikeRepo,
		commentLikeRepo: commentLikeRepo,
		postCache:       postCache,
		metrics:         m,
		logger:          logger,
	}
}

// TogglePostLike flips whether the user likes the post
func (s *likeServiceImpl) TogglePostLike(ctx context.Context, postID, userID uuid.UUID) (*dto.ToggleLikeResponse, error) {
	if userID == uuid.Nil {
		return nil, response.NewValidationError("User ID is required", "")
	}
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify post", err.Error())
	}

	resp, err := s.toggle(ctx, likeTargetPost, s.postLikeRepo, postID, userID)
	if err != nil {
		return nil, err
	}
	if s.postCache != nil {
		s.postCache.InvalidatePublished(ctx)
	}
	return resp, nil
}

// ToggleCommentLike flips whether the user likes the comment
func (s *likeServiceImpl) ToggleCommentLike(ctx context.Context, commentID, userID uuid.UUID) (*dto.ToggleLikeResponse, error) {
	if userID == uuid.Nil {
		return nil, response.NewValidationError("User ID is required", "")
	}
	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify comment", err.Error())
	}

	return s.toggle(ctx, likeTargetComment, s.commentLikeRepo, commentID, userID)
}

// toggle runs check-then-act against the like table of the target.
// The (target, user) unique index serializes concurrent toggles; losing the insert race
// means another request already liked on behalf of the user, so the stored state is returned.
func (s *likeServiceImpl) toggle(ctx context.Context, target string, likes repository.LikeRepository, targetID, userID uuid.UUID) (*dto.ToggleLikeResponse, error) {
	exists, err := likes.Exists(ctx, targetID, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check like", err.Error())
	}

	var isLiked bool
	if exists {
		if _, err := likes.Delete(ctx, targetID, userID); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to remove like", err.Error())
		}
		isLiked = false
	} else {
		err := likes.Create(ctx, targetID, userID)
		switch {
		case err == nil:
			isLiked = true
		case repository.IsDuplicateKey(err):
			s.metrics.RecordLikeConflict(target)
			s.logger.Debug("Concurrent like detected",
				zap.String("target", target),
				zap.String("target_id", targetID.String()),
				zap.String("user_id", userID.String()))
			isLiked, err = likes.Exists(ctx, targetID, userID)
			if err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check like", err.Error())
			}
		default:
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add like", err.Error())
		}
	}

	total, err := likes.CountByTarget(ctx, targetID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count likes", err.Error())
	}

	s.metrics.RecordLikeToggle(target, isLiked)

	return &dto.ToggleLikeResponse{
		Success:    true,
		IsLiked:    isLiked,
		TotalLikes: total,
	}, nil
}
