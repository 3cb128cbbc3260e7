package client

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// MockS3Client implements S3ClientInterface in memory for tests and local runs without AWS
type MockS3Client struct {
	Bucket string
	Region string

	mu      sync.Mutex
	Objects map[string][]byte

	// Optional function overrides for custom test behavior
	UploadFileFunc func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc func(ctx context.Context, key string) error
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket:  "test-bucket",
		Region:  "ap-northeast-2",
		Objects: map[string][]byte{},
	}
}

func (m *MockS3Client) GenerateFileKey(fileName string) string {
	return generateFileKey(time.Now(), fileName)
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	m.mu.Lock()
	m.Objects[key] = data
	m.mu.Unlock()
	return m.GetFileURL(key), nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	m.mu.Lock()
	delete(m.Objects, key)
	m.mu.Unlock()
	return nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}

// HasObject reports whether key is stored
func (m *MockS3Client) HasObject(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Objects[key]
	return ok
}
