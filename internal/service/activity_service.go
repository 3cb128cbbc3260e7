package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

const (
	activityFeedLimit    = 20
	commentActivityLimit = 20
	likeActivityLimit    = 20
	postActivityLimit    = 10
	commentExcerptLength = 100

	commentActivityMessage = "New comment on your post"
	likeActivityMessage    = "Someone liked your post"
	postActivityMessage    = "You published a new post"
)

// ActivityService defines the interface for the derived activity feed
type ActivityService interface {
	BuildActivityFeed(ctx context.Context, userID uuid.UUID) ([]*dto.ActivityResponse, error)
}

type activityServiceImpl struct {
	activityRepo repository.ActivityRepository
	logger       *zap.Logger
}

// NewActivityService creates a new instance of ActivityService
func NewActivityService(activityRepo repository.ActivityRepository, logger *zap.Logger) ActivityService {
	return &activityServiceImpl{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// BuildActivityFeed merges recent comments and likes received on the user's posts
// with the user's own published posts, newest first, at most activityFeedLimit entries.
func (s *activityServiceImpl) BuildActivityFeed(ctx context.Context, userID uuid.UUID) ([]*dto.ActivityResponse, error) {
	if userID == uuid.Nil {
		return nil, response.NewValidationError("User ID is required", "")
	}

	var (
		comments []domain.CommentActivity
		likes    []domain.LikeActivity
		posts    []domain.PostActivity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.activityRepo.FindCommentsOnAuthorPosts(gctx, userID, commentActivityLimit)
		return err
	})
	g.Go(func() error {
		var err error
		likes, err = s.activityRepo.FindLikesOnAuthorPosts(gctx, userID, likeActivityLimit)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.activityRepo.FindPublishedByAuthor(gctx, userID, postActivityLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch activities", err.Error())
	}

	sources := make([]domain.ActivitySource, 0, len(comments)+len(likes)+len(posts))
	for _, c := range comments {
		sources = append(sources, c)
	}
	for _, l := range likes {
		sources = append(sources, l)
	}
	for _, p := range posts {
		sources = append(sources, p)
	}

	activities := mergeActivities(sources)

	s.logger.Debug("Built activity feed",
		zap.String("user_id", userID.String()),
		zap.Int("comments", len(comments)),
		zap.Int("likes", len(likes)),
		zap.Int("posts", len(posts)),
		zap.Int("returned", len(activities)))

	return activities, nil
}

// mergeActivities sorts the sources newest first, keeping the input order on ties,
// and truncates the result to activityFeedLimit.
func mergeActivities(sources []domain.ActivitySource) []*dto.ActivityResponse {
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].OccurredAt().After(sources[j].OccurredAt())
	})
	if len(sources) > activityFeedLimit {
		sources = sources[:activityFeedLimit]
	}

	activities := make([]*dto.ActivityResponse, 0, len(sources))
	for _, source := range sources {
		activities = append(activities, toActivityResponse(source))
	}
	return activities
}

func toActivityResponse(source domain.ActivitySource) *dto.ActivityResponse {
	activity := &dto.ActivityResponse{
		ID:   string(source.Kind()) + "-" + source.SourceID().String(),
		Type: string(source.Kind()),
		Date: source.OccurredAt(),
	}

	switch a := source.(type) {
	case domain.CommentActivity:
		excerpt := truncateRunes(a.Content, commentExcerptLength, "...")
		activity.Message = commentActivityMessage
		activity.PostTitle = a.PostTitle
		activity.PostID = a.PostID.String()
		activity.Author = a.AuthorName
		activity.Metadata = dto.ActivityMetadata{CommentContent: &excerpt, AuthorAvatar: a.AuthorAvatar}
	case domain.LikeActivity:
		activity.Message = likeActivityMessage
		activity.PostTitle = a.PostTitle
		activity.PostID = a.PostID.String()
		activity.Author = a.LikerName
		activity.Metadata = dto.ActivityMetadata{LikerAvatar: a.LikerAvatar}
	case domain.PostActivity:
		activity.Message = postActivityMessage
		activity.PostTitle = a.PostTitle
		activity.PostID = a.PostID.String()
		activity.IsRead = true
	}

	return activity
}
