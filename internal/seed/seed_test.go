package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blog-api/internal/database"
	"blog-api/internal/domain"
)

func TestSeeder_RunIsIdempotent(t *testing.T) {
	db, err := database.New(database.Config{Driver: database.DriverSQLite, DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))
	t.Cleanup(func() { _ = database.Close(db) })

	seeder := NewSeeder(db, zap.NewNop())

	first, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Result{Users: 3, Posts: 4, Comments: 4, Likes: 3}, first)

	second, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Result{}, second)

	var replies int64
	require.NoError(t, db.Model(&domain.Comment{}).Where("parent_id IS NOT NULL").Count(&replies).Error)
	assert.Equal(t, int64(1), replies)

	var drafts int64
	require.NoError(t, db.Model(&domain.Post{}).Where("published = ?", false).Count(&drafts).Error)
	assert.Equal(t, int64(1), drafts)
}
