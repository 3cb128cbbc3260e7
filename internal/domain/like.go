package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostLike records that a user liked a post. At most one row per (post, user).
type PostLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_post_likes_post_user,priority:1" json:"postId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_post_likes_post_user,priority:2;index:idx_post_likes_user_id" json:"userId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	Post      *Post     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for PostLike
func (PostLike) TableName() string {
	return "post_likes"
}

func (l *PostLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// CommentLike records that a user liked a comment. At most one row per (comment, user).
type CommentLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CommentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_comment_likes_comment_user,priority:1" json:"commentId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_comment_likes_comment_user,priority:2;index:idx_comment_likes_user_id" json:"userId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	Comment   *Comment  `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for CommentLike
func (CommentLike) TableName() string {
	return "comment_likes"
}

func (l *CommentLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
