package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-api/internal/dto"
	"blog-api/internal/service"
)

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	BuildThreadFunc func(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID) ([]*dto.CommentThreadResponse, error)
	AddCommentFunc  func(ctx context.Context, postID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
}

func (m *MockCommentService) BuildThread(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID) ([]*dto.CommentThreadResponse, error) {
	if m.BuildThreadFunc != nil {
		return m.BuildThreadFunc(ctx, postID, viewerID)
	}
	return []*dto.CommentThreadResponse{}, nil
}

func (m *MockCommentService) AddComment(ctx context.Context, postID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, postID, authorID, req)
	}
	return &dto.CommentResponse{ID: uuid.New(), Content: req.Content}, nil
}

// MockActivityService is a mock implementation of ActivityService
type MockActivityService struct {
	BuildActivityFeedFunc func(ctx context.Context, userID uuid.UUID) ([]*dto.ActivityResponse, error)
}

func (m *MockActivityService) BuildActivityFeed(ctx context.Context, userID uuid.UUID) ([]*dto.ActivityResponse, error) {
	if m.BuildActivityFeedFunc != nil {
		return m.BuildActivityFeedFunc(ctx, userID)
	}
	return []*dto.ActivityResponse{}, nil
}

// MockLikeService is a mock implementation of LikeService
type MockLikeService struct {
	TogglePostLikeFunc    func(ctx context.Context, postID, userID uuid.UUID) (*dto.ToggleLikeResponse, error)
	ToggleCommentLikeFunc func(ctx context.Context, commentID, userID uuid.UUID) (*dto.ToggleLikeResponse, error)
}

func (m *MockLikeService) TogglePostLike(ctx context.Context, postID, userID uuid.UUID) (*dto.ToggleLikeResponse, error) {
	if m.TogglePostLikeFunc != nil {
		return m.TogglePostLikeFunc(ctx, postID, userID)
	}
	return &dto.ToggleLikeResponse{Success: true}, nil
}

func (m *MockLikeService) ToggleCommentLike(ctx context.Context, commentID, userID uuid.UUID) (*dto.ToggleLikeResponse, error) {
	if m.ToggleCommentLikeFunc != nil {
		return m.ToggleCommentLikeFunc(ctx, commentID, userID)
	}
	return &dto.ToggleLikeResponse{Success: true}, nil
}

// MockPostService is a mock implementation of PostService
type MockPostService struct {
	ListPublishedFunc func(ctx context.Context) ([]*dto.PostSummaryResponse, error)
	GetPostFunc       func(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID) (*dto.PostDetailResponse, error)
	CreatePostFunc    func(ctx context.Context, authorID uuid.UUID, req *dto.PostRequest) (*dto.PostDetailResponse, error)
	UpdatePostFunc    func(ctx context.Context, postID, userID uuid.UUID, req *dto.PostRequest) (*dto.PostDetailResponse, error)
	DeletePostFunc    func(ctx context.Context, postID, userID uuid.UUID) error
	GetRelatedFunc    func(ctx context.Context, postID uuid.UUID) ([]*dto.PostSummaryResponse, error)
	ListByAuthorFunc  func(ctx context.Context, userID uuid.UUID) ([]*dto.UserPostResponse, error)
}

func (m *MockPostService) ListPublished(ctx context.Context) ([]*dto.PostSummaryResponse, error) {
	if m.ListPublishedFunc != nil {
		return m.ListPublishedFunc(ctx)
	}
	return []*dto.PostSummaryResponse{}, nil
}

func (m *MockPostService) GetPost(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID) (*dto.PostDetailResponse, error) {
	if m.GetPostFunc != nil {
		return m.GetPostFunc(ctx, postID, viewerID)
	}
	return &dto.PostDetailResponse{ID: postID}, nil
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID uuid.UUID, req *dto.PostRequest) (*dto.PostDetailResponse, error) {
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, authorID, req)
	}
	return &dto.PostDetailResponse{ID: uuid.New(), Title: req.Title, AuthorID: authorID, CreatedAt: time.Now()}, nil
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID, userID uuid.UUID, req *dto.PostRequest) (*dto.PostDetailResponse, error) {
	if m.UpdatePostFunc != nil {
		return m.UpdatePostFunc(ctx, postID, userID, req)
	}
	return &dto.PostDetailResponse{ID: postID, Title: req.Title}, nil
}

func (m *MockPostService) DeletePost(ctx context.Context, postID, userID uuid.UUID) error {
	if m.DeletePostFunc != nil {
		return m.DeletePostFunc(ctx, postID, userID)
	}
	return nil
}

func (m *MockPostService) GetRelated(ctx context.Context, postID uuid.UUID) ([]*dto.PostSummaryResponse, error) {
	if m.GetRelatedFunc != nil {
		return m.GetRelatedFunc(ctx, postID)
	}
	return []*dto.PostSummaryResponse{}, nil
}

func (m *MockPostService) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*dto.UserPostResponse, error) {
	if m.ListByAuthorFunc != nil {
		return m.ListByAuthorFunc(ctx, userID)
	}
	return []*dto.UserPostResponse{}, nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	GetProfileFunc    func(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfileFunc func(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return &dto.ProfileResponse{ID: userID}, nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, req)
	}
	return &dto.UpdateProfileResponse{Success: true}, nil
}

// MockCategoryService is a mock implementation of CategoryService
type MockCategoryService struct {
	ListCategoriesFunc   func(ctx context.Context) ([]*dto.CategoryResponse, error)
	GetCategoryStatsFunc func(ctx context.Context) ([]*dto.CategoryStatsResponse, error)
}

func (m *MockCategoryService) EnsureDefaults(ctx context.Context) error { return nil }

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return []*dto.CategoryResponse{}, nil
}

func (m *MockCategoryService) Resolve(ctx context.Context, valueOrLabel string) (*dto.CategoryResponse, error) {
	return &dto.CategoryResponse{Value: valueOrLabel}, nil
}

func (m *MockCategoryService) GetCategoryStats(ctx context.Context) ([]*dto.CategoryStatsResponse, error) {
	if m.GetCategoryStatsFunc != nil {
		return m.GetCategoryStatsFunc(ctx)
	}
	return []*dto.CategoryStatsResponse{}, nil
}

// MockImageService is a mock implementation of ImageService
type MockImageService struct {
	UploadFunc         func(ctx context.Context, userID uuid.UUID, upload *service.ImageUpload) (*dto.UploadImageResponse, error)
	CleanupExpiredFunc func(ctx context.Context, now time.Time) (int, error)
}

func (m *MockImageService) Upload(ctx context.Context, userID uuid.UUID, upload *service.ImageUpload) (*dto.UploadImageResponse, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, userID, upload)
	}
	return &dto.UploadImageResponse{Success: true}, nil
}

func (m *MockImageService) CleanupExpired(ctx context.Context, now time.Time) (int, error) {
	if m.CleanupExpiredFunc != nil {
		return m.CleanupExpiredFunc(ctx, now)
	}
	return 0, nil
}
