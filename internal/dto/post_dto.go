package dto

import (
	"time"

	"github.com/google/uuid"
)

// PostRequest is the body of post create and edit
type PostRequest struct {
	Title    string  `json:"title" example:"Getting started with Go"`
	Content  string  `json:"content"`
	Excerpt  string  `json:"excerpt,omitempty"`
	Category string  `json:"category" example:"tech"`
	Image    *string `json:"image,omitempty"`
	Status   string  `json:"status,omitempty" example:"published"`
	ReadTime string  `json:"readTime,omitempty" example:"5 min read"`
}

// PostSummaryResponse is an entry of the published listing and of related posts
type PostSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	Image     *string   `json:"image"`
	ReadTime  string    `json:"readTime"`
	CreatedAt time.Time `json:"createdAt"`
	Author    *string   `json:"author"`
	Comments  int64     `json:"comments"`
	Likes     int64     `json:"likes"`
	Date      string    `json:"date" example:"2024-05-01"`
}

// PostDetailResponse is a single post page
type PostDetailResponse struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Excerpt   string         `json:"excerpt"`
	Content   string         `json:"content"`
	Category  string         `json:"category"`
	Image     *string        `json:"image"`
	ReadTime  string         `json:"readTime"`
	Published bool           `json:"published"`
	AuthorID  uuid.UUID      `json:"authorId"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Date      string         `json:"date"`
	Likes     int64          `json:"likes"`
	IsLiked   bool           `json:"isLiked"`
}

// UserPostResponse is a dashboard row of the author's own posts
type UserPostResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	Published bool      `json:"published"`
	Status    string    `json:"status" example:"Published"`
	ReadTime  string    `json:"readTime"`
	CreatedAt time.Time `json:"createdAt"`
	Date      string    `json:"date"`
	Views     int64     `json:"views"`
	Comments  int64     `json:"comments"`
	Likes     int64     `json:"likes"`
}

// DeletePostResponse acknowledges a delete
type DeletePostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
