package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FindByIDsFunc   func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error)
	UpdateFunc      func(ctx context.Context, user *domain.User) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	CreateFunc                   func(ctx context.Context, post *domain.Post) error
	FindByIDFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindByTitleFunc              func(ctx context.Context, title string) (*domain.Post, error)
	UpdateFunc                   func(ctx context.Context, post *domain.Post) error
	DeleteFunc                   func(ctx context.Context, id uuid.UUID) error
	FindPublishedFunc            func(ctx context.Context) ([]*domain.Post, error)
	FindByAuthorFunc             func(ctx context.Context, authorID uuid.UUID) ([]*domain.Post, error)
	FindRelatedFunc              func(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*domain.Post, error)
	CountPublishedByCategoryFunc func(ctx context.Context) (map[string]int64, error)
	CountFunc                    func(ctx context.Context) (int64, error)
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPostRepository) FindByTitle(ctx context.Context, title string) (*domain.Post, error) {
	if m.FindByTitleFunc != nil {
		return m.FindByTitleFunc(ctx, title)
	}
	return nil, nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPostRepository) FindPublished(ctx context.Context) ([]*domain.Post, error) {
	if m.FindPublishedFunc != nil {
		return m.FindPublishedFunc(ctx)
	}
	return nil, nil
}

func (m *MockPostRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Post, error) {
	if m.FindByAuthorFunc != nil {
		return m.FindByAuthorFunc(ctx, authorID)
	}
	return nil, nil
}

func (m *MockPostRepository) FindRelated(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*domain.Post, error) {
	if m.FindRelatedFunc != nil {
		return m.FindRelatedFunc(ctx, category, excludeID, limit)
	}
	return nil, nil
}

func (m *MockPostRepository) CountPublishedByCategory(ctx context.Context) (map[string]int64, error) {
	if m.CountPublishedByCategoryFunc != nil {
		return m.CountPublishedByCategoryFunc(ctx)
	}
	return nil, nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc         func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindTopLevelFunc   func(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
	FindRepliesFunc    func(ctx context.Context, parentID uuid.UUID) ([]*domain.Comment, error)
	CountByPostIDsFunc func(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindTopLevel(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindTopLevelFunc != nil {
		return m.FindTopLevelFunc(ctx, postID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindReplies(ctx context.Context, parentID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindRepliesFunc != nil {
		return m.FindRepliesFunc(ctx, parentID)
	}
	return nil, nil
}

func (m *MockCommentRepository) CountByPostIDs(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if m.CountByPostIDsFunc != nil {
		return m.CountByPostIDsFunc(ctx, postIDs)
	}
	return nil, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockLikeRepository is a mock implementation of LikeRepository
type MockLikeRepository struct {
	ExistsFunc           func(ctx context.Context, targetID, userID uuid.UUID) (bool, error)
	CreateFunc           func(ctx context.Context, targetID, userID uuid.UUID) error
	DeleteFunc           func(ctx context.Context, targetID, userID uuid.UUID) (int64, error)
	CountByTargetFunc    func(ctx context.Context, targetID uuid.UUID) (int64, error)
	CountByTargetsFunc   func(ctx context.Context, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	FindLikedTargetsFunc func(ctx context.Context, userID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *MockLikeRepository) Exists(ctx context.Context, targetID, userID uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, targetID, userID)
	}
	return false, nil
}

func (m *MockLikeRepository) Create(ctx context.Context, targetID, userID uuid.UUID) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, targetID, userID)
	}
	return nil
}

func (m *MockLikeRepository) Delete(ctx context.Context, targetID, userID uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, targetID, userID)
	}
	return 0, nil
}

func (m *MockLikeRepository) CountByTarget(ctx context.Context, targetID uuid.UUID) (int64, error) {
	if m.CountByTargetFunc != nil {
		return m.CountByTargetFunc(ctx, targetID)
	}
	return 0, nil
}

func (m *MockLikeRepository) CountByTargets(ctx context.Context, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if m.CountByTargetsFunc != nil {
		return m.CountByTargetsFunc(ctx, targetIDs)
	}
	return nil, nil
}

func (m *MockLikeRepository) FindLikedTargets(ctx context.Context, userID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if m.FindLikedTargetsFunc != nil {
		return m.FindLikedTargetsFunc(ctx, userID, targetIDs)
	}
	return nil, nil
}

func (m *MockLikeRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	FindCommentsOnAuthorPostsFunc func(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.CommentActivity, error)
	FindLikesOnAuthorPostsFunc    func(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.LikeActivity, error)
	FindPublishedByAuthorFunc     func(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.PostActivity, error)
}

func (m *MockActivityRepository) FindCommentsOnAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.CommentActivity, error) {
	if m.FindCommentsOnAuthorPostsFunc != nil {
		return m.FindCommentsOnAuthorPostsFunc(ctx, authorID, limit)
	}
	return nil, nil
}

func (m *MockActivityRepository) FindLikesOnAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.LikeActivity, error) {
	if m.FindLikesOnAuthorPostsFunc != nil {
		return m.FindLikesOnAuthorPostsFunc(ctx, authorID, limit)
	}
	return nil, nil
}

func (m *MockActivityRepository) FindPublishedByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]domain.PostActivity, error) {
	if m.FindPublishedByAuthorFunc != nil {
		return m.FindPublishedByAuthorFunc(ctx, authorID, limit)
	}
	return nil, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	FindAllFunc            func(ctx context.Context) ([]*domain.Category, error)
	FindByValueOrLabelFunc func(ctx context.Context, valueOrLabel string) (*domain.Category, error)
	CreateBatchFunc        func(ctx context.Context, categories []*domain.Category) error
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindByValueOrLabel(ctx context.Context, valueOrLabel string) (*domain.Category, error) {
	if m.FindByValueOrLabelFunc != nil {
		return m.FindByValueOrLabelFunc(ctx, valueOrLabel)
	}
	return nil, nil
}

func (m *MockCategoryRepository) CreateBatch(ctx context.Context, categories []*domain.Category) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, categories)
	}
	return nil
}

// MockImageRepository is a mock implementation of ImageRepository
type MockImageRepository struct {
	CreateFunc          func(ctx context.Context, image *domain.Image) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	ConfirmByURLFunc    func(ctx context.Context, fileURL string, postID uuid.UUID) (int64, error)
	FindExpiredTempFunc func(ctx context.Context, now time.Time) ([]*domain.Image, error)
	DeleteBatchFunc     func(ctx context.Context, ids []uuid.UUID) error
}

func (m *MockImageRepository) Create(ctx context.Context, image *domain.Image) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, image)
	}
	return nil
}

func (m *MockImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockImageRepository) ConfirmByURL(ctx context.Context, fileURL string, postID uuid.UUID) (int64, error) {
	if m.ConfirmByURLFunc != nil {
		return m.ConfirmByURLFunc(ctx, fileURL, postID)
	}
	return 0, nil
}

func (m *MockImageRepository) FindExpiredTemp(ctx context.Context, now time.Time) ([]*domain.Image, error) {
	if m.FindExpiredTempFunc != nil {
		return m.FindExpiredTempFunc(ctx, now)
	}
	return nil, nil
}

func (m *MockImageRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, ids)
	}
	return nil
}
// MockPostCache records invalidations and serves a preset listing
type MockPostCache struct {
	Cached        []*dto.PostSummaryResponse
	Hit           bool
	Stored        []*dto.PostSummaryResponse
	Invalidations int
}

func (m *MockPostCache) GetPublished(ctx context.Context) ([]*dto.PostSummaryResponse, bool) {
	return m.Cached, m.Hit
}

func (m *MockPostCache) SetPublished(ctx context.Context, posts []*dto.PostSummaryResponse) {
	m.Stored = posts
}

func (m *MockPostCache) InvalidatePublished(ctx context.Context) {
	m.Invalidations++
}
