package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest is the body of POST /posts/:postId/comments
type CreateCommentRequest struct {
	Content  string  `json:"content" example:"Great post!"`
	ParentID *string `json:"parentId,omitempty" example:"7b0c3f8e-3f61-4c43-9d55-1d3c9bb0c2a1"`
}

// AuthorResponse is the display data of a comment or post author.
// Both fields are null when the user record no longer exists.
type AuthorResponse struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// CommentResponse is a single comment or reply
type CommentResponse struct {
	ID        uuid.UUID      `json:"id"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	Date      string         `json:"date"`
	ParentID  *uuid.UUID     `json:"parentId,omitempty"`
	Author    AuthorResponse `json:"author"`
	Likes     int64          `json:"likes"`
	IsLiked   bool           `json:"isLiked"`
}

// CommentThreadResponse is a top-level comment with its replies, newest first
type CommentThreadResponse struct {
	CommentResponse
	Replies []*CommentResponse `json:"replies"`
}
