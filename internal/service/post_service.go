package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/cache"
	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

const (
	excerptLength = 160
	relatedLimit  = 3
)

// PostService defines the interface for post business logic
type PostService interface {
	ListPublished(ctx context.Context) ([]*dto.PostSummaryResponse, error)
	GetPost(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID) (*dto.PostDetailResponse, error)
	CreatePost(ctx context.Context, authorID uuid.UUID, req *dto.PostRequest) (*dto.PostDetailResponse, error)
	UpdatePost(ctx context.Context, postID, userID uuid.UUID, req *dto.PostRequest) (*dto.PostDetailResponse, error)
	DeletePost(ctx context.Context, postID, userID uuid.UUID) error
	GetRelated(ctx context.Context, postID uuid.UUID) ([]*dto.PostSummaryResponse, error)
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*dto.UserPostResponse, error)
}

type postServiceImpl struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	commentRepo  repository.CommentRepository
	postLikeRepo repository.LikeRepository
	categoryRepo repository.CategoryRepository
	imageRepo    repository.ImageRepository
	postCache    cache.PostCache
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewPostService creates a new instance of PostService
func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	postLikeRepo repository.LikeRepository,
	categoryRepo repository.CategoryRepository,
	imageRepo repository.ImageRepository,
	postCache cache.PostCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		userRepo:     userRepo,
		commentRepo:  commentRepo,
		postLikeRepo: postLikeRepo,
		categoryRepo: categoryRepo,
		imageRepo:    imageRepo,
		postCache:    postCache,
		metrics:      m,
		logger:       logger,
	}
}

// ListPublished returns published posts newest first, served from cache when warm
func (s *postServiceImpl) ListPublished(ctx context.Context) ([]*dto.PostSummaryResponse, error) {
	if s.postCache != nil {
		if cached, ok := s.postCache.GetPublished(ctx); ok {
			return cached, nil
		}
	}

	posts, err := s.postRepo.FindPublished(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}

	summaries, err := s.summarize(ctx, posts)
	if err != nil {
		return nil, err
	}

	if s.postCache != nil {
		s.postCache.SetPublished(ctx, summaries)
	}
	return summaries, nil
}

// GetPost returns a single post with its author and like state
func (s *postServiceImpl) GetPost(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID) (*dto.PostDetailResponse, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.toDetail(ctx, post, viewerID)
}

// CreatePost validates and stores a new post owned by authorID
func (s *postServiceImpl) CreatePost(ctx context.Context, authorID uuid.UUID, req *dto.PostRequest) (*dto.PostDetailResponse, error) {
	if authorID == uuid.Nil {
		return nil, response.NewUnauthorizedError("Authentication required", "")
	}

	post := &domain.Post{AuthorID: authorID}
	if err := s.applyRequest(ctx, post, req); err != nil {
		return nil, err
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create post", err.Error())
	}

	s.confirmImage(ctx, post)
	s.metrics.IncrementPostCreated()
	s.invalidate(ctx)

	s.logger.Info("Post created",
		zap.String("post_id", post.ID.String()),
		zap.String("author_id", authorID.String()),
		zap.Bool("published", post.Published))

	return s.toDetail(ctx, post, &authorID)
}

// UpdatePost edits a post; only its author may do so
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID, userID uuid.UUID, req *dto.PostRequest) (*dto.PostDetailResponse, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, response.NewForbiddenError("You can only edit your own posts", "")
	}

	if err := s.applyRequest(ctx, post, req); err != nil {
		return nil, err
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update post", err.Error())
	}

	s.confirmImage(ctx, post)
	s.invalidate(ctx)

	return s.toDetail(ctx, post, &userID)
}

// DeletePost removes a post with its comments and likes; only its author may do so
func (s *postServiceImpl) DeletePost(ctx context.Context, postID, userID uuid.UUID) error {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return response.NewForbiddenError("You can only delete your own posts", "")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Post not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete post", err.Error())
	}

	s.invalidate(ctx)
	return nil
}

// GetRelated returns up to relatedLimit published posts of the same category
func (s *postServiceImpl) GetRelated(ctx context.Context, postID uuid.UUID) ([]*dto.PostSummaryResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []*dto.PostSummaryResponse{}, nil
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	related, err := s.postRepo.FindRelated(ctx, post.Category, post.ID, relatedLimit)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch related posts", err.Error())
	}
	return s.summarize(ctx, related)
}

// ListByAuthor returns every post of the user, drafts included
func (s *postServiceImpl) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*dto.UserPostResponse, error) {
	if userID == uuid.Nil {
		return nil, response.NewValidationError("User ID is required", "")
	}

	posts, err := s.postRepo.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user posts", err.Error())
	}

	comments, likes, err := s.countEngagement(ctx, posts)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UserPostResponse, len(posts))
	for i, p := range posts {
		responses[i] = &dto.UserPostResponse{
			ID:        p.ID,
			Title:     p.Title,
			Excerpt:   p.Excerpt,
			Category:  p.Category,
			Published: p.Published,
			Status:    p.Status(),
			ReadTime:  p.ReadTime,
			CreatedAt: p.CreatedAt,
			Date:      formatDay(p.CreatedAt),
			Comments:  comments[p.ID],
			Likes:     likes[p.ID],
		}
	}
	return responses, nil
}

func (s *postServiceImpl) findPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}
	return post, nil
}

// applyRequest validates req and copies it onto post
func (s *postServiceImpl) applyRequest(ctx context.Context, post *domain.Post, req *dto.PostRequest) error {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	categoryKey := strings.TrimSpace(req.Category)
	if title == "" || content == "" || categoryKey == "" {
		return response.NewValidationError("Title, content, and category are required", "")
	}

	category, err := s.categoryRepo.FindByValueOrLabel(ctx, categoryKey)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch category", err.Error())
	}
	if category == nil {
		return response.NewValidationError("Invalid category", categoryKey)
	}

	excerpt := strings.TrimSpace(req.Excerpt)
	if excerpt == "" {
		excerpt = defaultExcerpt(req.Content)
	}
	readTime := strings.TrimSpace(req.ReadTime)
	if readTime == "" {
		readTime = domain.DefaultReadTime
	}

	var image *string
	if req.Image != nil && strings.TrimSpace(*req.Image) != "" {
		trimmed := strings.TrimSpace(*req.Image)
		image = &trimmed
	}

	post.Title = title
	post.Content = req.Content
	post.Excerpt = excerpt
	post.Category = category.Value
	post.Image = image
	post.ReadTime = readTime
	post.Published = req.Status == domain.PostStatusPublished
	return nil
}

// confirmImage promotes the uploaded image the post points at, if any
func (s *postServiceImpl) confirmImage(ctx context.Context, post *domain.Post) {
	if post.Image == nil || s.imageRepo == nil {
		return
	}
	confirmed, err := s.imageRepo.ConfirmByURL(ctx, *post.Image, post.ID)
	if err != nil {
		s.logger.Warn("Failed to confirm post image",
			zap.String("post_id", post.ID.String()),
			zap.Error(err))
		return
	}
	if confirmed > 0 {
		s.logger.Debug("Post image confirmed", zap.String("post_id", post.ID.String()))
	}
}

func (s *postServiceImpl) invalidate(ctx context.Context) {
	if s.postCache != nil {
		s.postCache.InvalidatePublished(ctx)
	}
}

func (s *postServiceImpl) countEngagement(ctx context.Context, posts []*domain.Post) (map[uuid.UUID]int64, map[uuid.UUID]int64, error) {
	ids := make([]uuid.UUID, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	comments, err := s.commentRepo.CountByPostIDs(ctx, ids)
	if err != nil {
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}
	likes, err := s.postLikeRepo.CountByTargets(ctx, ids)
	if err != nil {
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to count likes", err.Error())
	}
	return comments, likes, nil
}

func (s *postServiceImpl) summarize(ctx context.Context, posts []*domain.Post) ([]*dto.PostSummaryResponse, error) {
	if len(posts) == 0 {
		return []*dto.PostSummaryResponse{}, nil
	}

	authorIDs := make([]uuid.UUID, len(posts))
	for i, p := range posts {
		authorIDs[i] = p.AuthorID
	}
	authors, err := s.userRepo.FindByIDs(ctx, uniqueUUIDs(authorIDs))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post authors", err.Error())
	}

	comments, likes, err := s.countEngagement(ctx, posts)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.PostSummaryResponse, len(posts))
	for i, p := range posts {
		summaries[i] = &dto.PostSummaryResponse{
			ID:        p.ID,
			Title:     p.Title,
			Excerpt:   p.Excerpt,
			Category:  p.Category,
			Image:     p.Image,
			ReadTime:  p.ReadTime,
			CreatedAt: p.CreatedAt,
			Author:    authorName(authors[p.AuthorID]),
			Comments:  comments[p.ID],
			Likes:     likes[p.ID],
			Date:      formatDay(p.CreatedAt),
		}
	}
	return summaries, nil
}

func (s *postServiceImpl) toDetail(ctx context.Context, post *domain.Post, viewerID *uuid.UUID) (*dto.PostDetailResponse, error) {
	author, err := s.userRepo.FindByID(ctx, post.AuthorID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post author", err.Error())
		}
		author = nil
	}

	likes, err := s.postLikeRepo.CountByTarget(ctx, post.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count likes", err.Error())
	}

	isLiked := false
	if viewerID != nil && *viewerID != uuid.Nil {
		isLiked, err = s.postLikeRepo.Exists(ctx, post.ID, *viewerID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check like", err.Error())
		}
	}

	return &dto.PostDetailResponse{
		ID:        post.ID,
		Title:     post.Title,
		Excerpt:   post.Excerpt,
		Content:   post.Content,
		Category:  post.Category,
		Image:     post.Image,
		ReadTime:  post.ReadTime,
		Published: post.Published,
		AuthorID:  post.AuthorID,
		Author:    toAuthorResponse(author),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		Date:      formatDay(post.CreatedAt),
		Likes:     likes,
		IsLiked:   isLiked,
	}, nil
}
