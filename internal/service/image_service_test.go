package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blog-api/internal/client"
	"blog-api/internal/domain"
	"blog-api/internal/response"
)

func TestImageService_Upload(t *testing.T) {
	userID := uuid.New()

	t.Run("성공: 이미지 업로드 후 TEMP 기록", func(t *testing.T) {
		s3 := client.NewMockS3Client()
		var recorded *domain.Image
		images := &MockImageRepository{
			CreateFunc: func(ctx context.Context, img *domain.Image) error {
				img.ID = uuid.New()
				recorded = img
				return nil
			},
		}
		svc := NewImageService(images, s3, time.Hour, 1<<20, nil, zap.NewNop())

		resp, err := svc.Upload(context.Background(), userID, &ImageUpload{
			FileName: "cat.png", ContentType: "image/png", Size: 4, Body: strings.NewReader("meow"),
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		require.NotNil(t, recorded)
		assert.Equal(t, domain.ImageStatusTemp, recorded.Status)
		assert.Equal(t, resp.FileURL, recorded.FileURL)
		assert.True(t, strings.HasPrefix(recorded.FileKey, "blog-images/"))
		assert.True(t, strings.HasSuffix(recorded.FileKey, "-cat.png"))
		require.NotNil(t, recorded.ExpiresAt)
		assert.True(t, recorded.ExpiresAt.After(time.Now()))
		assert.True(t, s3.HasObject(recorded.FileKey))
	})

	tests := []struct {
		name        string
		userID      uuid.UUID
		upload      *ImageUpload
		wantErrCode string
	}{
		{name: "실패: 인증 없음", userID: uuid.Nil, upload: &ImageUpload{ContentType: "image/png", Body: strings.NewReader("x")}, wantErrCode: response.ErrCodeUnauthorized},
		{name: "실패: 파일 없음", userID: userID, upload: nil, wantErrCode: response.ErrCodeValidation},
		{name: "실패: 이미지가 아닌 파일", userID: userID, upload: &ImageUpload{FileName: "a.pdf", ContentType: "application/pdf", Body: strings.NewReader("x")}, wantErrCode: response.ErrCodeValidation},
		{name: "실패: 용량 초과", userID: userID, upload: &ImageUpload{FileName: "a.png", ContentType: "image/png", Size: 2 << 20, Body: strings.NewReader("x")}, wantErrCode: response.ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewImageService(&MockImageRepository{}, client.NewMockS3Client(), time.Hour, 1<<20, nil, zap.NewNop())
			_, err := svc.Upload(context.Background(), tt.userID, tt.upload)
			assert.True(t, response.IsCode(err, tt.wantErrCode), "got %v", err)
		})
	}

	t.Run("실패: 기록 실패 시 업로드된 객체 제거", func(t *testing.T) {
		s3 := client.NewMockS3Client()
		var uploadedKey string
		s3.UploadFileFunc = func(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
			uploadedKey = key
			return "https://example.com/" + key, nil
		}
		deleted := ""
		s3.DeleteFileFunc = func(ctx context.Context, key string) error {
			deleted = key
			return nil
		}
		images := &MockImageRepository{
			CreateFunc: func(ctx context.Context, img *domain.Image) error { return errors.New("db down") },
		}
		svc := NewImageService(images, s3, time.Hour, 0, nil, zap.NewNop())
		_, err := svc.Upload(context.Background(), userID, &ImageUpload{FileName: "a.png", ContentType: "image/png", Body: strings.NewReader("x")})
		assert.True(t, response.IsCode(err, response.ErrCodeInternal))
		assert.Equal(t, uploadedKey, deleted)
	})
}

func TestImageService_CleanupExpired(t *testing.T) {
	now := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	ok1 := &domain.Image{BaseModel: domain.BaseModel{ID: uuid.New()}, FileKey: "blog-images/1-a.png"}
	stuck := &domain.Image{BaseModel: domain.BaseModel{ID: uuid.New()}, FileKey: "blog-images/2-b.png"}

	s3 := client.NewMockS3Client()
	s3.DeleteFileFunc = func(ctx context.Context, key string) error {
		if key == stuck.FileKey {
			return errors.New("access denied")
		}
		return nil
	}
	var deletedIDs []uuid.UUID
	images := &MockImageRepository{
		FindExpiredTempFunc: func(ctx context.Context, at time.Time) ([]*domain.Image, error) {
			assert.Equal(t, now, at)
			return []*domain.Image{ok1, stuck}, nil
		},
		DeleteBatchFunc: func(ctx context.Context, ids []uuid.UUID) error {
			deletedIDs = ids
			return nil
		},
	}

	removed, err := NewImageService(images, s3, time.Hour, 0, nil, zap.NewNop()).CleanupExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []uuid.UUID{ok1.ID}, deletedIDs)
}
