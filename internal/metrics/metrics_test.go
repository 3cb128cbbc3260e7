package metrics

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewWithRegistry(reg, zap.NewNop()), reg
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementPostCreated()
		m.RecordLikeToggle("post", true)
		m.RecordHTTPRequest("GET", "/api/posts", 200, time.Millisecond)
		m.UpdateDBStats(sql.DBStats{})
		m.RecordAPIRequest("/api/posts", false, 200)
	})
}

func TestBusinessCounters(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.IncrementPostCreated()
	m.IncrementCommentCreated()
	m.IncrementCommentCreated()
	m.IncrementImageUploaded()
	m.AddImagesCleaned(3)

	assert.Equal(t, 1.0, counterValue(t, m.PostCreatedTotal))
	assert.Equal(t, 2.0, counterValue(t, m.CommentCreatedTotal))
	assert.Equal(t, 1.0, counterValue(t, m.ImagesUploadedTotal))
	assert.Equal(t, 3.0, counterValue(t, m.ImagesCleanedTotal))
}

func TestRecordLikeToggle(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordLikeToggle("post", true)
	m.RecordLikeToggle("post", true)
	m.RecordLikeToggle("post", false)
	m.RecordLikeToggle("comment", true)
	m.RecordLikeConflict("post")

	assert.Equal(t, 2.0, counterValue(t, m.LikeToggledTotal.WithLabelValues("post", "liked")))
	assert.Equal(t, 1.0, counterValue(t, m.LikeToggledTotal.WithLabelValues("post", "unliked")))
	assert.Equal(t, 1.0, counterValue(t, m.LikeToggledTotal.WithLabelValues("comment", "liked")))
	assert.Equal(t, 1.0, counterValue(t, m.LikeConflictsTotal.WithLabelValues("post")))
}

func TestRecordDBQuery(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordDBQuery("SELECT", "posts", 10*time.Millisecond, nil)
	m.RecordDBQuery("insert", "post_likes", time.Millisecond, errors.New("duplicate key"))

	assert.Equal(t, 1.0, counterValue(t, m.DBQueryErrors.WithLabelValues("insert", "post_likes")))
	assert.Equal(t, 0.0, counterValue(t, m.DBQueryErrors.WithLabelValues("select", "posts")))
}

func TestRecordDBQuery_Labels(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordDBQuery("query", "comments", time.Millisecond, gorm.ErrRecordNotFound)
	m.RecordDBQuery("query", "schema_migrations", time.Millisecond, errors.New("syntax error"))
	m.RecordDBQuery("query", "", time.Millisecond, errors.New("syntax error"))
	m.RecordDBQuery("query", `"Comment_Likes"`, time.Millisecond, nil)

	assert.Equal(t, 0.0, counterValue(t, m.DBQueryErrors.WithLabelValues("query", "comments")), "missing row is not an error")
	assert.Equal(t, 2.0, counterValue(t, m.DBQueryErrors.WithLabelValues("query", "other")))
	assert.Equal(t, 0.0, counterValue(t, m.DBQueryErrors.WithLabelValues("query", "comment_likes")))
	assert.Equal(t, "comment_likes", tableLabel(`"Comment_Likes"`))
}

func TestUpdateDBStats(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.UpdateDBStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3, MaxOpenConnections: 25})
	m.UpdateDBStats("not stats")

	assert.Equal(t, 4.0, gaugeValue(t, m.DBConnectionsOpen))
	assert.Equal(t, 1.0, gaugeValue(t, m.DBConnectionsInUse))
	assert.Equal(t, 3.0, gaugeValue(t, m.DBConnectionsIdle))
	assert.Equal(t, 25.0, gaugeValue(t, m.DBConnectionsMax))

	m.UpdateDBStats(sql.DBStats{WaitCount: 7, WaitDuration: 1500 * time.Millisecond})
	assert.Equal(t, 7.0, gaugeValue(t, m.DBConnectionsWaitCount))
	assert.Equal(t, 1.5, gaugeValue(t, m.DBConnectionsWaitSeconds))
}

func TestRecordExternalAPICall(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordExternalAPICall("/api/auth/validate", "POST", 401, time.Millisecond, nil)
	m.RecordExternalAPICall("/api/auth/validate", "POST", 0, time.Millisecond, errors.New("dial tcp: connection refused"))

	assert.Equal(t, 1.0, counterValue(t, m.ExternalAPIErrors.WithLabelValues("/api/auth/validate", "unauthorized")))
	assert.Equal(t, 1.0, counterValue(t, m.ExternalAPIErrors.WithLabelValues("/api/auth/validate", "connection_refused")))
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "/api/posts/{id}/comments",
		normalizeEndpoint("/api/posts/123e4567-e89b-12d3-a456-426614174000/comments"))
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"}, {201, "2xx"}, {302, "3xx"}, {404, "4xx"}, {500, "5xx"}, {0, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categorizeStatus(tt.code))
	}
}

func TestResourceOf(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"/api/posts", "posts"},
		{"/api/posts/:postId", "posts"},
		{"/api/posts/:postId/related", "posts"},
		{"/api/users/posts", "posts"},
		{"/api/posts/:postId/comments", "comments"},
		{"/api/posts/:postId/like", "likes"},
		{"/api/comments/:commentId/like", "likes"},
		{"/api/users/:userId/activities", "activities"},
		{"/api/users/profile", "profile"},
		{"/api/auth/session", "session"},
		{"/api/categories", "categories"},
		{"/api/categories/stats", "categories"},
		{"/api/upload", "images"},
		{"/blog/v1/posts/:postId/like", "likes"},
		{"/", "other"},
		{"", "other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResourceOf(tt.endpoint), tt.endpoint)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordAPIRequest("/api/posts/:postId/like", true, 200)
	m.RecordAPIRequest("/api/comments/:commentId/like", true, 200)
	m.RecordAPIRequest("/api/posts/:postId/like", false, 400)

	assert.Equal(t, 2.0, counterValue(t, m.APIRequestsTotal.WithLabelValues("likes", "authenticated", "2xx")))
	assert.Equal(t, 1.0, counterValue(t, m.APIRequestsTotal.WithLabelValues("likes", "anonymous", "4xx")))
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/swagger/index.html"))
	assert.False(t, ShouldSkipEndpoint("/api/posts"))
}

func TestMetricNamesUseNamespace(t *testing.T) {
	m, reg := newTestMetrics(t)
	m.IncrementPostCreated()
	m.RecordHTTPRequest("GET", "/api/posts", 200, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
	for _, f := range families {
		assert.Regexp(t, `^blog_service_[a-z_]+$`, f.GetName())
	}
}

func TestBusinessMetricsCollector(t *testing.T) {
	m, _ := newTestMetrics(t)

	sources := BusinessSources{
		Posts:    func(context.Context) (int64, error) { return 7, nil },
		Comments: func(context.Context) (int64, error) { return 0, errors.New("db down") },
		Likes:    func(context.Context) (int64, error) { return 12, nil },
	}
	c := NewBusinessMetricsCollector(sources, m, zap.NewNop(), time.Hour)
	c.Start()
	defer c.Stop()

	assert.Eventually(t, func() bool {
		return gaugeValue(t, m.PostsTotal) == 7 && gaugeValue(t, m.LikesTotal) == 12
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0.0, gaugeValue(t, m.CommentsTotal))
}
