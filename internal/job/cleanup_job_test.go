package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockImageCleaner is a mock implementation of ImageCleaner
type MockImageCleaner struct {
	mock.Mock
}

func (m *MockImageCleaner) CleanupExpired(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func TestImageCleanupJob_Run(t *testing.T) {
	fixed := time.Date(2024, 5, 2, 3, 0, 0, 0, time.UTC)

	t.Run("성공: 현재 시각 기준으로 정리", func(t *testing.T) {
		cleaner := new(MockImageCleaner)
		cleaner.On("CleanupExpired", mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()
			return hasDeadline
		}), fixed).Return(2, nil).Once()

		job := NewImageCleanupJob(cleaner, time.Minute, zap.NewNop())
		job.now = func() time.Time { return fixed }
		job.Run()

		cleaner.AssertExpectations(t)
	})

	t.Run("실패: 정리 오류는 로그만 남김", func(t *testing.T) {
		cleaner := new(MockImageCleaner)
		cleaner.On("CleanupExpired", mock.Anything, mock.Anything).Return(0, errors.New("s3 unavailable")).Once()

		job := NewImageCleanupJob(cleaner, 0, zap.NewNop())
		assert.NotPanics(t, job.Run)
		cleaner.AssertExpectations(t)
	})
}

func TestScheduler(t *testing.T) {
	s := NewScheduler(zap.NewNop())

	err := s.Register("image-cleanup", "not a schedule", NewImageCleanupJob(new(MockImageCleaner), 0, zap.NewNop()))
	require.Error(t, err)
	assert.Equal(t, 0, s.Entries())

	cleaner := new(MockImageCleaner)
	cleaner.On("CleanupExpired", mock.Anything, mock.Anything).Return(0, nil).Maybe()
	require.NoError(t, s.Register("image-cleanup", "@every 1h", NewImageCleanupJob(cleaner, 0, zap.NewNop())))
	assert.Equal(t, 1, s.Entries())

	s.Start()
	select {
	case <-s.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
