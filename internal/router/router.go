package router

import (
	"net/http"
	"time"

	commonmw "github.com/OrangesCloud/wealist-advanced-go-pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/auth"
	"blog-api/internal/cache"
	"blog-api/internal/handler"
	"blog-api/internal/metrics"
	"blog-api/internal/middleware"
	"blog-api/internal/repository"
	"blog-api/internal/response"
	"blog-api/internal/service"
)

const serviceName = "blog-service"

// Config holds router configuration
type Config struct {
	DB       *gorm.DB
	Redis    *redis.Client // optional, listing cache is bypassed when nil
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer // defaults to prometheus.DefaultGatherer
	Resolver auth.IdentityResolver
	S3Client service.S3Client // optional, uploads answer 503 when nil
	BasePath string

	PostCacheTTL  time.Duration
	ImageTTL      time.Duration
	MaxUploadSize int64
}

// Services are the application services behind the routes
type Services struct {
	Post     service.PostService
	Comment  service.CommentService
	Activity service.ActivityService
	Like     service.LikeService
	User     service.UserService
	Category service.CategoryService
	Image    service.ImageService // nil without an S3 client
}

// NewServices wires repositories and services on top of cfg.DB
func NewServices(cfg Config) *Services {
	userRepo := repository.NewUserRepository(cfg.DB)
	postRepo := repository.NewPostRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	postLikeRepo := repository.NewPostLikeRepository(cfg.DB)
	commentLikeRepo := repository.NewCommentLikeRepository(cfg.DB)
	categoryRepo := repository.NewCategoryRepository(cfg.DB)
	imageRepo := repository.NewImageRepository(cfg.DB)
	activityRepo := repository.NewActivityRepository(cfg.DB)

	postCache := cache.NewRedisPostCache(cfg.Redis, cfg.PostCacheTTL, cfg.Logger)

	svc := &Services{
		Post: service.NewPostService(postRepo, userRepo, commentRepo, postLikeRepo, categoryRepo, imageRepo,
			postCache, cfg.Metrics, cfg.Logger),
		Comment:  service.NewCommentService(commentRepo, postRepo, userRepo, commentLikeRepo, postCache, cfg.Metrics, cfg.Logger),
		Activity: service.NewActivityService(activityRepo, cfg.Logger),
		Like:     service.NewLikeService(postRepo, commentRepo, postLikeRepo, commentLikeRepo, postCache, cfg.Metrics, cfg.Logger),
		User:     service.NewUserService(userRepo, cfg.Logger),
		Category: service.NewCategoryService(categoryRepo, postRepo, cfg.Logger),
	}
	if cfg.S3Client != nil {
		svc.Image = service.NewImageService(imageRepo, cfg.S3Client, cfg.ImageTTL, cfg.MaxUploadSize, cfg.Metrics, cfg.Logger)
	}
	return svc
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	return SetupWithServices(cfg, NewServices(cfg))
}

// SetupWithServices registers all routes against already built services
func SetupWithServices(cfg Config, svc *Services) *gin.Engine {
	r := newEngine(cfg)

	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
			return
		}
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName})
	})

	// Initialize handlers
	postHandler := handler.NewPostHandler(svc.Post, cfg.Logger)
	commentHandler := handler.NewCommentHandler(svc.Comment, cfg.Logger)
	activityHandler := handler.NewActivityHandler(svc.Activity, cfg.Logger)
	likeHandler := handler.NewLikeHandler(svc.Like, cfg.Logger)
	userHandler := handler.NewUserHandler(svc.User, cfg.Logger)
	categoryHandler := handler.NewCategoryHandler(svc.Category, cfg.Logger)

	resolver := cfg.Resolver
	if resolver == nil {
		resolver = auth.NewChainResolver()
	}

	api := r.Group(cfg.BasePath)
	api.Use(middleware.Identity(resolver, cfg.Logger))
	requireAuth := middleware.RequireIdentity()

	// ============================================================
	// Session
	// ============================================================
	api.GET("/auth/session", userHandler.GetSession)

	// ============================================================
	// Post routes
	// ============================================================
	posts := api.Group("/posts")
	{
		posts.GET("", postHandler.ListPosts)
		posts.POST("", requireAuth, postHandler.CreatePost)
		posts.GET("/:postId", postHandler.GetPost)
		posts.PUT("/:postId", requireAuth, postHandler.UpdatePost)
		posts.DELETE("/:postId", requireAuth, postHandler.DeletePost)
		posts.GET("/:postId/related", postHandler.GetRelatedPosts)

		// Comment thread
		posts.GET("/:postId/comments", commentHandler.GetComments)
		posts.POST("/:postId/comments", commentHandler.CreateComment)

		posts.POST("/:postId/like", likeHandler.TogglePostLike)
	}

	api.POST("/comments/:commentId/like", likeHandler.ToggleCommentLike)

	// ============================================================
	// User routes
	// ============================================================
	users := api.Group("/users")
	{
		users.GET("/profile", requireAuth, userHandler.GetProfile)
		users.PUT("/profile", requireAuth, userHandler.UpdateProfile)
		users.GET("/posts", requireAuth, postHandler.GetMyPosts)
		users.GET("/:userId/activities", activityHandler.GetActivities)
	}

	// ============================================================
	// Category routes
	// ============================================================
	categories := api.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/stats", categoryHandler.GetCategoryStats)
	}

	// ============================================================
	// Image upload
	// ============================================================
	if svc.Image != nil {
		imageHandler := handler.NewImageHandler(svc.Image, cfg.Logger)
		api.POST("/upload", requireAuth, imageHandler.UploadImage)
	} else {
		api.POST("/upload", requireAuth, func(c *gin.Context) {
			response.SendError(c, http.StatusServiceUnavailable, response.ErrCodeInternal, "Image upload is not configured")
		})
	}

	return r
}

// SetupDegraded serves health and metrics while the database is unreachable.
// Every API route answers 503 until the full router replaces it.
func SetupDegraded(cfg Config) *gin.Engine {
	r := newEngine(cfg)

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
	})
	r.NoRoute(func(c *gin.Context) {
		response.SendError(c, http.StatusServiceUnavailable, response.ErrCodeInternal, "Service is starting")
	})

	return r
}

// newEngine installs middleware and the routes shared by every mode
func newEngine(cfg Config) *gin.Engine {
	r := gin.New()

	// Middleware (using common package)
	r.Use(commonmw.Recovery(cfg.Logger))
	r.Use(commonmw.Logger(cfg.Logger))
	r.Use(commonmw.DefaultCORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Prometheus metrics endpoint
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
