package domain

import "github.com/google/uuid"

const (
	DefaultReadTime     = "5 min read"
	PostStatusPublished = "published"
	PostStatusDraft     = "draft"
)

// Post represents a blog post
type Post struct {
	BaseModel
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt   string    `gorm:"type:text;not null" json:"excerpt"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"type:varchar(50);not null;index:idx_posts_category" json:"category"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_posts_author_id" json:"authorId"`
	Image     *string   `gorm:"type:text" json:"image"`
	ReadTime  string    `gorm:"type:varchar(50);not null;default:'5 min read'" json:"readTime"`
	Published bool      `gorm:"not null;default:false;index:idx_posts_published" json:"published"`
	Author    *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// Status returns the dashboard label of the post
func (p *Post) Status() string {
	if p.Published {
		return "Published"
	}
	return "Draft"
}
