package domain

import "github.com/google/uuid"

// Comment represents a comment on a post.
// ParentID is nil for top-level comments; replies point at a top-level comment of the same post.
type Comment struct {
	BaseModel
	PostID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_post_parent,priority:1" json:"postId"`
	AuthorID uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_author_id" json:"authorId"`
	ParentID *uuid.UUID `gorm:"type:uuid;index:idx_comments_post_parent,priority:2" json:"parentId"`
	Content  string     `gorm:"type:text;not null" json:"content"`
	Post     *Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Author   *User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Parent   *Comment   `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// IsReply reports whether the comment hangs under another comment
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
