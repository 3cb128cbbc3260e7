package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"blog-api/internal/cache"
	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

// replyFetchConcurrency bounds the number of reply queries in flight per thread
const replyFetchConcurrency = 8

// CommentService defines the interface for comment thread business logic
type CommentService interface {
	BuildThread(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID) ([]*dto.CommentThreadResponse, error)
	AddComment(ctx context.Context, postID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo     repository.CommentRepository
	postRepo        repository.PostRepository
	userRepo        repository.UserRepository
	commentLikeRepo repository.LikeRepository
	postCache       cache.PostCache
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	commentLikeRepo repository.LikeRepository,
	postCache cache.PostCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo:     commentRepo,
		postRepo:        postRepo,
		userRepo:        userRepo,
		commentLikeRepo: commentLikeRepo,
		postCache:       postCache,
		metrics:         m,
		logger:          logger,
	}
}

// BuildThread returns the two-level comment tree of a post, newest first at both levels.
// An unknown post simply has no comments.
func (s *commentServiceImpl) BuildThread(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID) ([]*dto.CommentThreadResponse, error) {
	topLevel, err := s.commentRepo.FindTopLevel(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}
	if len(topLevel) == 0 {
		return []*dto.CommentThreadResponse{}, nil
	}

	replies := make([][]*domain.Comment, len(topLevel))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(replyFetchConcurrency)
	for i, comment := range topLevel {
		i, comment := i, comment
		g.Go(func() error {
			found, err := s.commentRepo.FindReplies(gctx, comment.ID)
			if err != nil {
				return err
			}
			// replies must live on the same post as their parent
			kept := found[:0]
			for _, reply := range found {
				if reply.PostID == postID {
					kept = append(kept, reply)
				}
			}
			replies[i] = kept
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch replies", err.Error())
	}

	all := make([]*domain.Comment, 0, len(topLevel))
	all = append(all, topLevel...)
	for _, group := range replies {
		all = append(all, group...)
	}

	decorations, err := s.decorate(ctx, all, viewerID)
	if err != nil {
		return nil, err
	}

	threads := make([]*dto.CommentThreadResponse, len(topLevel))
	for i, comment := range topLevel {
		thread := &dto.CommentThreadResponse{
			CommentResponse: *decorations.toResponse(comment),
			Replies:         make([]*dto.CommentResponse, 0, len(replies[i])),
		}
		for _, reply := range replies[i] {
			thread.Replies = append(thread.Replies, decorations.toResponse(reply))
		}
		threads[i] = thread
	}

	return threads, nil
}

// AddComment stores a comment or a reply.
// A reply to a reply is attached to the top-level ancestor so the tree stays two levels deep.
func (s *commentServiceImpl) AddComment(ctx context.Context, postID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if authorID == uuid.Nil {
		return nil, response.NewUnauthorizedError("Authentication required", "")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.NewValidationError("Comment content is required", "")
	}

	var parentID *uuid.UUID
	if req.ParentID != nil && strings.TrimSpace(*req.ParentID) != "" {
		parsed, err := uuid.Parse(strings.TrimSpace(*req.ParentID))
		if err != nil {
			return nil, response.NewValidationError("Invalid parent comment ID", err.Error())
		}
		parentID = &parsed
	}

	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify post", err.Error())
	}

	if parentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewValidationError("Parent comment not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify parent comment", err.Error())
		}
		if parent.PostID != postID {
			return nil, response.NewValidationError("Parent comment belongs to another post", "")
		}
		if parent.ParentID != nil {
			parentID = parent.ParentID
		}
	}

	comment := &domain.Comment{
		PostID:   postID,
		AuthorID: authorID,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.metrics.IncrementCommentCreated()
	if s.postCache != nil {
		s.postCache.InvalidatePublished(ctx)
	}

	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Failed to load comment author",
				zap.String("author_id", authorID.String()),
				zap.Error(err))
		}
		author = nil
	}

	return &dto.CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Date:      formatISODate(comment.CreatedAt),
		ParentID:  comment.ParentID,
		Author:    toAuthorResponse(author),
	}, nil
}

// commentDecorations holds the batched per-comment lookups of one thread
type commentDecorations struct {
	authors map[uuid.UUID]*domain.User
	likes   map[uuid.UUID]int64
	liked   map[uuid.UUID]bool
}

func (d *commentDecorations) toResponse(comment *domain.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Date:      formatISODate(comment.CreatedAt),
		ParentID:  comment.ParentID,
		Author:    toAuthorResponse(d.authors[comment.AuthorID]),
		Likes:     d.likes[comment.ID],
		IsLiked:   d.liked[comment.ID],
	}
}

func (s *commentServiceImpl) decorate(ctx context.Context, comments []*domain.Comment, viewerID *uuid.UUID) (*commentDecorations, error) {
	commentIDs := make([]uuid.UUID, len(comments))
	authorIDs := make([]uuid.UUID, len(comments))
	for i, comment := range comments {
		commentIDs[i] = comment.ID
		authorIDs[i] = comment.AuthorID
	}

	authors, err := s.userRepo.FindByIDs(ctx, uniqueUUIDs(authorIDs))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment authors", err.Error())
	}

	likes, err := s.commentLikeRepo.CountByTargets(ctx, commentIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comment likes", err.Error())
	}

	liked := map[uuid.UUID]bool{}
	if viewerID != nil && *viewerID != uuid.Nil {
		liked, err = s.commentLikeRepo.FindLikedTargets(ctx, *viewerID, commentIDs)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch liked comments", err.Error())
		}
	}

	return &commentDecorations{authors: authors, likes: likes, liked: liked}, nil
}
