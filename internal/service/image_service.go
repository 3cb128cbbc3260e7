package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

// S3Client is the object storage the image service writes to
type S3Client interface {
	GenerateFileKey(fileName string) string
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

// ImageUpload is a single uploaded file as read from the multipart form
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageService defines the interface for image upload and cleanup
type ImageService interface {
	Upload(ctx context.Context, userID uuid.UUID, upload *ImageUpload) (*dto.UploadImageResponse, error)
	CleanupExpired(ctx context.Context, now time.Time) (int, error)
}

type imageServiceImpl struct {
	imageRepo     repository.ImageRepository
	s3Client      S3Client
	ttl           time.Duration
	maxUploadSize int64
	metrics       *metrics.Metrics
	logger        *zap.Logger
	now           func() time.Time
}

// NewImageService creates a new instance of ImageService.
// Uploaded images expire after ttl unless a post references them.
func NewImageService(imageRepo repository.ImageRepository, s3Client S3Client, ttl time.Duration, maxUploadSize int64, m *metrics.Metrics, logger *zap.Logger) ImageService {
	return &imageServiceImpl{
		imageRepo:     imageRepo,
		s3Client:      s3Client,
		ttl:           ttl,
		maxUploadSize: maxUploadSize,
		metrics:       m,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *imageServiceImpl) Upload(ctx context.Context, userID uuid.UUID, upload *ImageUpload) (*dto.UploadImageResponse, error) {
	if userID == uuid.Nil {
		return nil, response.NewUnauthorizedError("Authentication required", "")
	}
	if upload == nil || upload.Body == nil {
		return nil, response.NewValidationError("No file uploaded", "")
	}
	if !strings.HasPrefix(strings.ToLower(upload.ContentType), "image/") {
		return nil, response.NewValidationError("Only image files are allowed", upload.ContentType)
	}
	if s.maxUploadSize > 0 && upload.Size > s.maxUploadSize {
		return nil, response.NewValidationError("File is too large", "")
	}

	key := s.s3Client.GenerateFileKey(upload.FileName)
	fileURL, err := s.s3Client.UploadFile(ctx, key, upload.Body, upload.ContentType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload file", err.Error())
	}

	expiresAt := s.now().Add(s.ttl)
	image := &domain.Image{
		Status:      domain.ImageStatusTemp,
		FileName:    upload.FileName,
		FileKey:     key,
		FileURL:     fileURL,
		FileSize:    upload.Size,
		ContentType: upload.ContentType,
		UploadedBy:  userID,
		ExpiresAt:   &expiresAt,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		if delErr := s.s3Client.DeleteFile(ctx, key); delErr != nil {
			s.logger.Warn("Failed to roll back uploaded file", zap.String("key", key), zap.Error(delErr))
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record image", err.Error())
	}

	s.metrics.IncrementImageUploaded()

	return &dto.UploadImageResponse{
		Success: true,
		ID:      image.ID,
		FileURL: fileURL,
	}, nil
}

// CleanupExpired removes TEMP images past their expiry from storage and the database.
// Images whose object could not be deleted are kept for the next run.
func (s *imageServiceImpl) CleanupExpired(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.imageRepo.FindExpiredTemp(ctx, now)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to fetch expired images", err.Error())
	}
	if len(expired) == 0 {
		return 0, nil
	}

	removed := make([]uuid.UUID, 0, len(expired))
	for _, image := range expired {
		if err := s.s3Client.DeleteFile(ctx, image.FileKey); err != nil {
			s.logger.Warn("Failed to delete expired image from storage",
				zap.String("image_id", image.ID.String()),
				zap.String("key", image.FileKey),
				zap.Error(err))
			continue
		}
		removed = append(removed, image.ID)
	}

	if err := s.imageRepo.DeleteBatch(ctx, removed); err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to delete expired images", err.Error())
	}

	s.metrics.AddImagesCleaned(len(removed))
	return len(removed), nil
}
