package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// models lists every table in dependency order
func models() []modelInfo {
	return []modelInfo{
		{&domain.User{}, "users"},
		{&domain.Category{}, "categories"},
		{&domain.Post{}, "posts"},
		{&domain.Comment{}, "comments"},
		{&domain.PostLike{}, "post_likes"},
		{&domain.CommentLike{}, "comment_likes"},
		{&domain.Image{}, "images"},
	}
}

// AutoMigrate creates or updates every blog table.
// Existing tables only get missing columns and indexes.
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	tables := models()

	logger.Info("Starting auto-migration", zap.Int("total_models", len(tables)))

	for _, m := range tables {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Debug("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Auto-migration completed", zap.Int("tables_migrated", len(tables)))
	return nil
}

// AutoMigrateWithRetry runs AutoMigrate up to maxRetries times with linear backoff
func AutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = AutoMigrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying...",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
