// @title           Blog Service API
// @version         1.0
// @description     블로그 게시글, 댓글 스레드, 좋아요, 활동 피드 API
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "blog-api/docs" // Swagger docs import

	"blog-api/internal/auth"
	"blog-api/internal/client"
	"blog-api/internal/config"
	"blog-api/internal/database"
	"blog-api/internal/metrics"
	"blog-api/internal/router"
	"blog-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Blog Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("auth_api_url", cfg.AuthAPI.BaseURL),
	)

	ctx := context.Background()

	// Initialize metrics
	m := metrics.New(logger)
	logger.Info("Metrics initialized")

	// Redis is optional; the listing cache is bypassed without it
	redisClient, err := database.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, post listing cache disabled", zap.Error(err))
		redisClient = nil
	}

	s3Client := initS3(ctx, cfg, logger)

	app := newApplication(cfg, logger, router.Config{
		Redis:         redisClient,
		Logger:        logger,
		Metrics:       m,
		Resolver:      buildResolver(cfg, logger, m),
		S3Client:      s3Client,
		BasePath:      cfg.Server.BasePath,
		PostCacheTTL:  cfg.Redis.PostTTL,
		ImageTTL:      cfg.App.ImageTTL,
		MaxUploadSize: cfg.App.MaxUploadSize,
	})

	// Initialize database (실패해도 앱은 시작됨, 백그라운드에서 재시도)
	dbConfig := database.Config{
		Driver:          database.DriverPostgres,
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background", zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second, logger, app.start)
	} else {
		logger.Info("Database connected successfully")
		database.SetDB(db)
		app.start(db)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      app,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Blog Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	app.stop(shutdownCtx)

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db := database.GetDB(); db != nil {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
}

// buildResolver chains the trusted internal header before session tokens.
// Tokens go to auth-service first and fall back to local JWT validation.
func buildResolver(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) auth.IdentityResolver {
	resolvers := []auth.IdentityResolver{auth.NewTrustedHeaderResolver(cfg.Internal.APIKey)}

	var validator auth.TokenValidator
	if cfg.JWT.Secret != "" {
		validator = auth.NewJWTValidator(cfg.JWT.Secret)
	}
	if cfg.AuthAPI.BaseURL != "" {
		authClient := client.NewAuthClient(cfg.AuthAPI.BaseURL, cfg.AuthAPI.Timeout, logger, m)
		if validator != nil {
			validator = auth.NewFallbackValidator(authClient, validator, logger)
		} else {
			validator = authClient
		}
	}

	if validator != nil {
		resolvers = append(resolvers, auth.NewSessionResolver(validator, cfg.AuthAPI.Timeout))
	} else {
		logger.Warn("Neither JWT secret nor auth-service configured, session tokens are ignored")
	}

	return auth.NewChainResolver(resolvers...)
}

// initS3 returns an S3 client, an in-memory store in debug mode, or nil (uploads disabled)
func initS3(ctx context.Context, cfg *config.Config, logger *zap.Logger) service.S3Client {
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		s3Client, err := client.NewS3Client(ctx, &cfg.S3)
		if err == nil {
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
			return s3Client
		}
		logger.Warn("Failed to initialize S3 client, image uploads may be limited", zap.Error(err))
	}

	if cfg.Server.Mode == "debug" {
		logger.Warn("S3 not configured, using in-memory image store")
		return client.NewMockS3Client()
	}

	logger.Warn("S3 configuration incomplete, image uploads disabled")
	return nil
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
