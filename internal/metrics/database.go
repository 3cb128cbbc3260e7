package metrics

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// blogTables bounds the table label; joins and raw statements fall into "other"
var blogTables = map[string]struct{}{
	"users":         {},
	"posts":         {},
	"comments":      {},
	"post_likes":    {},
	"comment_likes": {},
	"categories":    {},
	"images":        {},
}

// UpdateDBStats updates database connection pool metrics.
// Wait count and wait time are cumulative in sql.DBStats and are exported as-is.
func (m *Metrics) UpdateDBStats(statsInterface interface{}) {
	m.safeExecute("UpdateDBStats", func() {
		stats, ok := statsInterface.(sql.DBStats)
		if !ok {
			return
		}
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))
		m.DBConnectionsWaitCount.Set(float64(stats.WaitCount))
		m.DBConnectionsWaitSeconds.Set(stats.WaitDuration.Seconds())
	})
}

// RecordDBQuery records database query metrics.
// A missing row is an answer, not a failure, so it is not counted as an error.
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		operation = strings.ToLower(operation)
		table = tableLabel(table)
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())

		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}

func tableLabel(table string) string {
	table = strings.Trim(strings.ToLower(table), "\"`")
	if _, ok := blogTables[table]; ok {
		return table
	}
	return "other"
}
