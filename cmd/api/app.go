package main

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/config"
	"blog-api/internal/database"
	"blog-api/internal/job"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/router"
)

const (
	dbStatsInterval       = 15 * time.Second
	businessStatsInterval = time.Minute
	cleanupTimeout        = 5 * time.Minute
)

// application serves the degraded router until the database is up,
// then swaps in the full router and starts background work.
type application struct {
	cfg       *config.Config
	logger    *zap.Logger
	routerCfg router.Config

	handler   atomic.Pointer[gin.Engine]
	scheduler *job.Scheduler

	mu        sync.Mutex
	started   bool
	dbStats   chan struct{}
	collector *metrics.BusinessMetricsCollector
}

func newApplication(cfg *config.Config, logger *zap.Logger, routerCfg router.Config) *application {
	a := &application{
		cfg:       cfg,
		logger:    logger,
		routerCfg: routerCfg,
		scheduler: job.NewScheduler(logger),
	}
	a.handler.Store(router.SetupDegraded(routerCfg))
	return a
}

func (a *application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.Load().ServeHTTP(w, r)
}

// start runs once per process, from main or from the background reconnect
func (a *application) start(db *gorm.DB) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started {
		return
	}
	a.started = true

	m := a.routerCfg.Metrics
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		a.logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	a.dbStats = database.StartDBStatsCollector(db, m, dbStatsInterval)

	if err := database.AutoMigrate(db, a.logger); err != nil {
		a.logger.Warn("Failed to run database migrations", zap.Error(err))
	} else {
		a.logger.Info("Database migrations completed")
	}

	routerCfg := a.routerCfg
	routerCfg.DB = db
	services := router.NewServices(routerCfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := services.Category.EnsureDefaults(ctx); err != nil {
		a.logger.Warn("Failed to seed default categories", zap.Error(err))
	}

	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	postLikeRepo := repository.NewPostLikeRepository(db)
	commentLikeRepo := repository.NewCommentLikeRepository(db)
	a.collector = metrics.NewBusinessMetricsCollector(metrics.BusinessSources{
		Posts:    postRepo.Count,
		Comments: commentRepo.Count,
		Likes: func(ctx context.Context) (int64, error) {
			posts, err := postLikeRepo.Count(ctx)
			if err != nil {
				return 0, err
			}
			comments, err := commentLikeRepo.Count(ctx)
			return posts + comments, err
		},
	}, m, a.logger, businessStatsInterval)
	a.collector.Start()

	if services.Image != nil {
		cleanup := job.NewImageCleanupJob(services.Image, cleanupTimeout, a.logger)
		if err := a.scheduler.Register("image-cleanup", a.cfg.App.CleanupSchedule, cleanup); err != nil {
			a.logger.Warn("Image cleanup job not scheduled", zap.Error(err))
		}
	}
	a.scheduler.Start()

	a.handler.Store(router.SetupWithServices(routerCfg, services))
	a.logger.Info("API routes enabled")
}

// stop halts background work, waiting for a running job until ctx expires
func (a *application) stop(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.started {
		return
	}

	select {
	case <-a.scheduler.Stop().Done():
	case <-ctx.Done():
		a.logger.Warn("Background jobs still running at shutdown")
	}
	a.collector.Stop()
	close(a.dbStats)
}
