package metrics

import (
	"strings"
	"time"
)

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		status := categorizeStatus(statusCode)
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// RecordAPIRequest counts a request against the blog resource it touched and
// whether the caller had a resolved identity.
func (m *Metrics) RecordAPIRequest(endpoint string, authenticated bool, statusCode int) {
	m.safeExecute("RecordAPIRequest", func() {
		caller := "anonymous"
		if authenticated {
			caller = "authenticated"
		}
		m.APIRequestsTotal.WithLabelValues(ResourceOf(endpoint), caller, categorizeStatus(statusCode)).Inc()
	})
}

// ResourceOf maps a route pattern such as /api/posts/:postId/like to the blog
// resource it serves. The base path is ignored.
func ResourceOf(endpoint string) string {
	segments := strings.Split(strings.Trim(endpoint, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return "other"
	}

	switch segments[len(segments)-1] {
	case "like":
		return "likes"
	case "comments":
		return "comments"
	case "activities":
		return "activities"
	case "related":
		return "posts"
	case "upload":
		return "images"
	case "session":
		return "session"
	case "profile":
		return "profile"
	}

	for _, s := range segments {
		switch s {
		case "categories":
			return "categories"
		case "posts":
			return "posts"
		}
	}
	return "other"
}

// categorizeStatus converts status code to category (2xx, 3xx, 4xx, 5xx)
func categorizeStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// ShouldSkipEndpoint excludes probes, scrapes and swagger from request metrics
func ShouldSkipEndpoint(path string) bool {
	return path == "/metrics" || path == "/health" || path == "/ready" ||
		strings.HasPrefix(path, "/swagger/")
}
