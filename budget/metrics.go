package budget

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting pinning metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    lockCounter  prometheus.Counter
//	    lockedBytes  prometheus.Gauge
//	}
//
//	func (p *PrometheusCollector) RecordLock(bytes uint64, duration time.Duration, err error) {
//	    p.lockCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordLock is called after each non-empty Lock.
	// bytes is the page-rounded size, err is nil if successful.
	RecordLock(bytes uint64, duration time.Duration, err error)

	// RecordUnlock is called after each non-empty Unlock.
	RecordUnlock(bytes uint64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLock(uint64, time.Duration, error) {}

func (NoopMetricsCollector) RecordUnlock(uint64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LockCount        atomic.Int64
	LockErrors       atomic.Int64
	LockedBytes      atomic.Uint64
	LockTotalNanos   atomic.Int64
	UnlockCount      atomic.Int64
	UnlockErrors     atomic.Int64
	UnlockedBytes    atomic.Uint64
	UnlockTotalNanos atomic.Int64
}

// RecordLock implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLock(bytes uint64, duration time.Duration, err error) {
	b.LockCount.Add(1)
	b.LockTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LockErrors.Add(1)
		return
	}
	b.LockedBytes.Add(bytes)
}

// RecordUnlock implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUnlock(bytes uint64, duration time.Duration, err error) {
	b.UnlockCount.Add(1)
	b.UnlockTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.UnlockErrors.Add(1)
		return
	}
	b.UnlockedBytes.Add(bytes)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	LockCount      int64
	LockErrors     int64
	LockedBytes    uint64
	LockAvgNanos   int64
	UnlockCount    int64
	UnlockErrors   int64
	UnlockedBytes  uint64
	UnlockAvgNanos int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LockCount:      b.LockCount.Load(),
		LockErrors:     b.LockErrors.Load(),
		LockedBytes:    b.LockedBytes.Load(),
		LockAvgNanos:   avg(b.LockTotalNanos.Load(), b.LockCount.Load()),
		UnlockCount:    b.UnlockCount.Load(),
		UnlockErrors:   b.UnlockErrors.Load(),
		UnlockedBytes:  b.UnlockedBytes.Load(),
		UnlockAvgNanos: avg(b.UnlockTotalNanos.Load(), b.UnlockCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
