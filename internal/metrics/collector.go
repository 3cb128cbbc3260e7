package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CountFunc returns the current row count of one table
type CountFunc func(ctx context.Context) (int64, error)

// BusinessSources are the counters sampled by the collector
type BusinessSources struct {
	Posts    CountFunc
	Comments CountFunc
	Likes    CountFunc
}

// BusinessMetricsCollector samples table sizes into the business gauges
type BusinessMetricsCollector struct {
	sources  BusinessSources
	metrics  *Metrics
	logger   *zap.Logger
	interval time.Duration
	done     chan struct{}
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(sources BusinessSources, metrics *Metrics, logger *zap.Logger, interval time.Duration) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		sources:  sources,
		metrics:  metrics,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start collects once immediately, then every interval until Stop
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	close(c.done)
}

func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.sample(ctx, "posts", c.sources.Posts, c.metrics.SetPostsTotal)
	c.sample(ctx, "comments", c.sources.Comments, c.metrics.SetCommentsTotal)
	c.sample(ctx, "post_likes", c.sources.Likes, c.metrics.SetLikesTotal)
}

func (c *BusinessMetricsCollector) sample(ctx context.Context, table string, count CountFunc, set func(int64)) {
	if count == nil {
		return
	}
	n, err := count(ctx)
	if err != nil {
		c.logger.Error("Failed to count rows", zap.String("table", table), zap.Error(err))
		return
	}
	set(n)
}
