package dto

import "time"

// ActivityMetadata carries the optional per-kind details of an activity
type ActivityMetadata struct {
	CommentContent *string `json:"commentContent,omitempty"`
	AuthorAvatar   *string `json:"authorAvatar,omitempty"`
	LikerAvatar    *string `json:"likerAvatar,omitempty"`
}

// ActivityResponse is one entry of a user's activity feed
type ActivityResponse struct {
	ID        string           `json:"id" example:"comment-7b0c3f8e-3f61-4c43-9d55-1d3c9bb0c2a1"`
	Type      string           `json:"type" example:"comment"`
	Message   string           `json:"message" example:"New comment on your post"`
	PostTitle string           `json:"postTitle"`
	PostID    string           `json:"postId"`
	Author    *string          `json:"author"`
	Date      time.Time        `json:"date"`
	IsRead    bool             `json:"isRead"`
	Metadata  ActivityMetadata `json:"metadata"`
}
