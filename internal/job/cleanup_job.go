package job

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ImageCleaner removes unattached uploads whose expiry has passed
type ImageCleaner interface {
	CleanupExpired(ctx context.Context, now time.Time) (int, error)
}

// ImageCleanupJob handles cleanup of expired temporary images
type ImageCleanupJob struct {
	cleaner ImageCleaner
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewImageCleanupJob creates a new ImageCleanupJob instance
func NewImageCleanupJob(cleaner ImageCleaner, timeout time.Duration, logger *zap.Logger) *ImageCleanupJob {
	return &ImageCleanupJob{
		cleaner: cleaner,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes the cleanup job
func (j *ImageCleanupJob) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	started := j.now()
	j.logger.Info("Starting cleanup job for expired temporary images")

	removed, err := j.cleaner.CleanupExpired(ctx, started.UTC())
	if err != nil {
		j.logger.Error("Image cleanup job failed", zap.Error(err))
		return
	}

	j.logger.Info("Image cleanup job completed",
		zap.Int("removed", removed),
		zap.Duration("elapsed", j.now().Sub(started)),
	)
}
