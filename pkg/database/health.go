package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is a point-in-time snapshot of the connection pool.
type PoolStats struct {
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"max_open"`
	WaitCount int64 `json:"wait_count"`
	WaitMS    int64 `json:"wait_ms"`
}

// HealthStatus reports graph store reachability and pool pressure.
// Status is "degraded" when the store answers but the pool is saturated,
// which on a busy ingest path shows up before queries start failing.
type HealthStatus struct {
	Status         string    `json:"status"`
	ResponseTimeMS int64     `json:"response_time_ms"`
	Pool           PoolStats `json:"pool"`
}

// Health pings the graph store and snapshots pool statistics.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:         "unhealthy",
			ResponseTimeMS: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	h := &HealthStatus{
		Status:         "healthy",
		ResponseTimeMS: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:      stats.OpenConnections,
			InUse:     stats.InUse,
			Idle:      stats.Idle,
			MaxOpen:   stats.MaxOpenConnections,
			WaitCount: stats.WaitCount,
			WaitMS:    stats.WaitDuration.Milliseconds(),
		},
	}
	if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections && stats.WaitCount > 0 {
		h.Status = "degraded"
	}
	return h, nil
}
