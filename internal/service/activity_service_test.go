package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/response"
)

func TestActivityService_BuildActivityFeed(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()
	name := "Bob"
	avatar := "https://cdn.example.com/bob.png"
	longText := strings.Repeat("가", 150)

	comment := domain.CommentActivity{
		CommentID: uuid.New(), Content: longText, PostID: postID, PostTitle: "Hello",
		AuthorName: &name, AuthorAvatar: &avatar, CreatedAt: threadBase.Add(3 * time.Hour),
	}
	like := domain.LikeActivity{
		LikeID: uuid.New(), PostID: postID, PostTitle: "Hello",
		LikerName: &name, LikerAvatar: &avatar, CreatedAt: threadBase.Add(2 * time.Hour),
	}
	post := domain.PostActivity{PostID: postID, PostTitle: "Hello", CreatedAt: threadBase.Add(time.Hour)}

	repo := &MockActivityRepository{
		FindCommentsOnAuthorPostsFunc: func(ctx context.Context, id uuid.UUID, limit int) ([]domain.CommentActivity, error) {
			assert.Equal(t, 20, limit)
			return []domain.CommentActivity{comment}, nil
		},
		FindLikesOnAuthorPostsFunc: func(ctx context.Context, id uuid.UUID, limit int) ([]domain.LikeActivity, error) {
			assert.Equal(t, 20, limit)
			return []domain.LikeActivity{like}, nil
		},
		FindPublishedByAuthorFunc: func(ctx context.Context, id uuid.UUID, limit int) ([]domain.PostActivity, error) {
			assert.Equal(t, 10, limit)
			return []domain.PostActivity{post}, nil
		},
	}

	feed, err := NewActivityService(repo, zap.NewNop()).BuildActivityFeed(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, feed, 3)

	assert.Equal(t, "comment-"+comment.CommentID.String(), feed[0].ID)
	assert.Equal(t, "comment", feed[0].Type)
	assert.Equal(t, "New comment on your post", feed[0].Message)
	assert.False(t, feed[0].IsRead)
	require.NotNil(t, feed[0].Metadata.CommentContent)
	assert.Equal(t, strings.Repeat("가", 100)+"...", *feed[0].Metadata.CommentContent)
	assert.Equal(t, &avatar, feed[0].Metadata.AuthorAvatar)

	assert.Equal(t, "like-"+like.LikeID.String(), feed[1].ID)
	assert.Equal(t, "Someone liked your post", feed[1].Message)
	assert.Equal(t, &avatar, feed[1].Metadata.LikerAvatar)
	assert.Nil(t, feed[1].Metadata.CommentContent)

	assert.Equal(t, "post-"+postID.String(), feed[2].ID)
	assert.Equal(t, "You published a new post", feed[2].Message)
	assert.True(t, feed[2].IsRead)
	assert.Nil(t, feed[2].Author)
	assert.Equal(t, postID.String(), feed[2].PostID)
}

func TestActivityService_BuildActivityFeed_Errors(t *testing.T) {
	t.Run("실패: 사용자 ID 없음은 조회 전에 거부", func(t *testing.T) {
		repo := &MockActivityRepository{
			FindCommentsOnAuthorPostsFunc: func(ctx context.Context, id uuid.UUID, limit int) ([]domain.CommentActivity, error) {
				t.Error("no fetch may run for a nil user")
				return nil, nil
			},
		}
		_, err := NewActivityService(repo, zap.NewNop()).BuildActivityFeed(context.Background(), uuid.Nil)
		assert.True(t, response.IsCode(err, response.ErrCodeValidation))
	})

	t.Run("성공: 게시글이 없는 사용자는 빈 피드", func(t *testing.T) {
		feed, err := NewActivityService(&MockActivityRepository{}, zap.NewNop()).BuildActivityFeed(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, feed)
		assert.Empty(t, feed)
	})

	t.Run("실패: 저장소 오류", func(t *testing.T) {
		repo := &MockActivityRepository{
			FindLikesOnAuthorPostsFunc: func(ctx context.Context, id uuid.UUID, limit int) ([]domain.LikeActivity, error) {
				return nil, errors.New("timeout")
			},
		}
		_, err := NewActivityService(repo, zap.NewNop()).BuildActivityFeed(context.Background(), uuid.New())
		assert.True(t, response.IsCode(err, response.ErrCodeInternal))
	})
}

func TestTruncateRunes_ShortContentKeptVerbatim(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 100, "..."))
	exact := strings.Repeat("a", 100)
	assert.Equal(t, exact, truncateRunes(exact, 100, "..."))
}

// For any mix of up to 20 comments, 20 likes and 10 posts the merged feed is
// newest first, never longer than 20 and keeps source order on equal timestamps.
func TestProperty_ActivityFeedOrdering(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	capped := func(v []int, max int) []int {
		if len(v) > max {
			return v[:max]
		}
		return v
	}

	properties.Property("feed is sorted desc, capped and stable", prop.ForAll(
		func(commentOffsets, likeOffsets, postOffsets []int) bool {
			commentOffsets = capped(commentOffsets, commentActivityLimit)
			likeOffsets = capped(likeOffsets, likeActivityLimit)
			postOffsets = capped(postOffsets, postActivityLimit)

			sources := make([]domain.ActivitySource, 0)
			for _, o := range commentOffsets {
				sources = append(sources, domain.CommentActivity{CommentID: uuid.New(), CreatedAt: threadBase.Add(time.Duration(o) * time.Minute)})
			}
			for _, o := range likeOffsets {
				sources = append(sources, domain.LikeActivity{LikeID: uuid.New(), CreatedAt: threadBase.Add(time.Duration(o) * time.Minute)})
			}
			for _, o := range postOffsets {
				sources = append(sources, domain.PostActivity{PostID: uuid.New(), CreatedAt: threadBase.Add(time.Duration(o) * time.Minute)})
			}

			position := make(map[string]int, len(sources))
			for i, s := range sources {
				position[string(s.Kind())+"-"+s.SourceID().String()] = i
			}
			total := len(sources)

			feed := mergeActivities(sources)

			expectedLen := total
			if expectedLen > activityFeedLimit {
				expectedLen = activityFeedLimit
			}
			if len(feed) != expectedLen {
				return false
			}
			for i := 1; i < len(feed); i++ {
				prev, cur := feed[i-1], feed[i]
				if prev.Date.Before(cur.Date) {
					return false
				}
				if prev.Date.Equal(cur.Date) && position[prev.ID] > position[cur.ID] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 30)),
		gen.SliceOf(gen.IntRange(0, 30)),
		gen.SliceOf(gen.IntRange(0, 30)),
	))

	properties.TestingRun(t)
}

// The newest entries survive truncation
func TestMergeActivities_KeepsNewest(t *testing.T) {
	sources := make([]domain.ActivitySource, 0, 25)
	for i := 0; i < 25; i++ {
		sources = append(sources, domain.PostActivity{PostID: uuid.New(), CreatedAt: threadBase.Add(time.Duration(i) * time.Minute)})
	}
	feed := mergeActivities(sources)
	require.Len(t, feed, 20)
	assert.Equal(t, threadBase.Add(24*time.Minute), feed[0].Date)
	assert.Equal(t, threadBase.Add(5*time.Minute), feed[19].Date)
	assert.IsType(t, &dto.ActivityResponse{}, feed[0])
}
