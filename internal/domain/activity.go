package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityKind tags the variant of a derived activity
type ActivityKind string

const (
	ActivityKindComment ActivityKind = "comment"
	ActivityKindLike    ActivityKind = "like"
	ActivityKindPost    ActivityKind = "post"
)

// ActivitySource is the common projection of the activity variants.
// Activities are never persisted; they are recomputed from comments, likes and posts.
type ActivitySource interface {
	Kind() ActivityKind
	SourceID() uuid.UUID
	OccurredAt() time.Time
}

// CommentActivity is a comment left on one of the user's posts
type CommentActivity struct {
	CommentID    uuid.UUID
	Content      string
	PostID       uuid.UUID
	PostTitle    string
	AuthorName   *string
	AuthorAvatar *string
	CreatedAt    time.Time
}

func (a CommentActivity) Kind() ActivityKind    { return ActivityKindComment }
func (a CommentActivity) SourceID() uuid.UUID   { return a.CommentID }
func (a CommentActivity) OccurredAt() time.Time { return a.CreatedAt }

// LikeActivity is a like received on one of the user's posts
type LikeActivity struct {
	LikeID      uuid.UUID
	PostID      uuid.UUID
	PostTitle   string
	LikerName   *string
	LikerAvatar *string
	CreatedAt   time.Time
}

func (a LikeActivity) Kind() ActivityKind    { return ActivityKindLike }
func (a LikeActivity) SourceID() uuid.UUID   { return a.LikeID }
func (a LikeActivity) OccurredAt() time.Time { return a.CreatedAt }

// PostActivity is a post the user published
type PostActivity struct {
	PostID    uuid.UUID
	PostTitle string
	CreatedAt time.Time
}

func (a PostActivity) Kind() ActivityKind    { return ActivityKindPost }
func (a PostActivity) SourceID() uuid.UUID   { return a.PostID }
func (a PostActivity) OccurredAt() time.Time { return a.CreatedAt }
