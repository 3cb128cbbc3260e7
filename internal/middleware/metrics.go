package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"blog-api/internal/metrics"
)

// Metrics records request counts and latency by route pattern, and API usage
// by blog resource and caller identity. Identity must run before the handler
// for the caller label to be set, which holds for routes in the API group.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics.ShouldSkipEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			m.RecordHTTPRequest(c.Request.Method, "unmatched", status, elapsed)
			return
		}

		_, authenticated := UserID(c)
		m.RecordHTTPRequest(c.Request.Method, endpoint, status, elapsed)
		m.RecordAPIRequest(endpoint, authenticated, status)
	}
}
