package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/database"
	"blog-api/internal/domain"
)

var baseTime = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.New(database.Config{Driver: database.DriverSQLite, DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *domain.User {
	t.Helper()
	u := &domain.User{Name: name, Email: uuid.NewString() + "@example.com"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createPost(t *testing.T, db *gorm.DB, authorID uuid.UUID, title string, published bool, at time.Time) *domain.Post {
	t.Helper()
	p := &domain.Post{
		BaseModel: domain.BaseModel{CreatedAt: at, UpdatedAt: at},
		Title:     title,
		Excerpt:   title,
		Content:   title + " content",
		Category:  "tech",
		AuthorID:  authorID,
		ReadTime:  domain.DefaultReadTime,
		Published: published,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func createComment(t *testing.T, db *gorm.DB, postID, authorID uuid.UUID, parentID *uuid.UUID, content string, at time.Time) *domain.Comment {
	t.Helper()
	c := &domain.Comment{
		BaseModel: domain.BaseModel{CreatedAt: at, UpdatedAt: at},
		PostID:    postID,
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   content,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func createPostLike(t *testing.T, db *gorm.DB, postID, userID uuid.UUID, at time.Time) *domain.PostLike {
	t.Helper()
	l := &domain.PostLike{PostID: postID, UserID: userID, CreatedAt: at}
	require.NoError(t, db.Create(l).Error)
	return l
}

func ctx() context.Context {
	return context.Background()
}
