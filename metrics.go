package lazyvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Grow and Reinit carry their wall-clock duration because they are the
// O(capacity) operations; Push and Pop are counted only, to keep the hot
// path free of timer calls.
type MetricsCollector interface {
	// RecordGrow is called after each capacity growth.
	// capacity is the new physical capacity, duration the time taken.
	RecordGrow(capacity int, duration time.Duration)

	// RecordReinit is called after each reinit.
	// n is the number of cells reset, duration the time taken.
	RecordReinit(n int, duration time.Duration)

	// RecordPush is called after each push.
	RecordPush()

	// RecordPop is called after each successful pop.
	RecordPop()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, time.Duration)   {}
func (NoopMetricsCollector) RecordReinit(int, time.Duration) {}
func (NoopMetricsCollector) RecordPush()                     {}
func (NoopMetricsCollector) RecordPop()                      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount        atomic.Int64
	GrowTotalNanos   atomic.Int64
	ReinitCount      atomic.Int64
	ReinitTotalNanos atomic.Int64
	PushCount        atomic.Int64
	PopCount         atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(capacity int, duration time.Duration) {
	b.GrowCount.Add(1)
	b.GrowTotalNanos.Add(duration.Nanoseconds())
}

// RecordReinit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReinit(n int, duration time.Duration) {
	b.ReinitCount.Add(1)
	b.ReinitTotalNanos.Add(duration.Nanoseconds())
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush() {
	b.PushCount.Add(1)
}

// RecordPop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPop() {
	b.PopCount.Add(1)
}
