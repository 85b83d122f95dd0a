// Package slo tracks service level objective compliance for the API.
// The metrics middleware records every request here; a periodic flush
// recomputes the compliance gauges from the recent window.
package slo

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets for the service.
const (
	// AvailabilitySLO defines the target uptime percentage (99.9% = 43 minutes downtime per month)
	AvailabilitySLO = 99.9

	// LatencyP95SLO defines the target for 95th percentile latency in seconds (200ms)
	LatencyP95SLO = 0.200

	// LatencyP99SLO defines the target for 99th percentile latency in seconds (500ms)
	LatencyP99SLO = 0.500

	// ErrorRateSLO defines the maximum acceptable error rate as a ratio (0.1% = 0.001)
	ErrorRateSLO = 0.001
)

var (
	// SLOAvailability tracks the current availability ratio (0-1),
	// calculated as (total_requests - 5xx_errors) / total_requests.
	SLOAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Current availability ratio (0-1), target: 0.999",
		},
	)

	// SLOLatencyP95 tracks the p95 latency over the recent request window.
	SLOLatencyP95 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p95_seconds",
			Help: "Current p95 latency in seconds, target: 0.200",
		},
	)

	// SLOLatencyP99 tracks the p99 latency over the recent request window.
	SLOLatencyP99 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p99_seconds",
			Help: "Current p99 latency in seconds, target: 0.500",
		},
	)

	// SLOErrorRate tracks the current error rate ratio (0-1),
	// calculated as 5xx_errors / total_requests.
	SLOErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "Current error rate ratio (0-1), target: 0.001",
		},
	)
)

// windowSize bounds the number of latency samples kept for quantiles.
const windowSize = 4096

type tracker struct {
	mu        sync.Mutex
	total     uint64
	errors    uint64
	durations []float64
	next      int
	filled    bool
}

var defaultTracker = &tracker{durations: make([]float64, windowSize)}

// Record notes one completed request. 5xx responses count against
// availability; everything else only feeds the latency window.
func Record(statusCode int, duration time.Duration) {
	defaultTracker.record(statusCode, duration)
}

// Flush recomputes the SLO gauges from everything recorded so far.
// Call it periodically; it is a no-op until the first request arrives.
func Flush() {
	defaultTracker.flush()
}

func (t *tracker) record(statusCode int, duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	if statusCode >= 500 {
		t.errors++
	}
	t.durations[t.next] = duration.Seconds()
	t.next++
	if t.next == len(t.durations) {
		t.next = 0
		t.filled = true
	}
}

func (t *tracker) flush() {
	t.mu.Lock()
	total, errors := t.total, t.errors
	n := t.next
	if t.filled {
		n = len(t.durations)
	}
	samples := make([]float64, n)
	copy(samples, t.durations[:n])
	t.mu.Unlock()

	if total == 0 {
		return
	}

	availability := float64(total-errors) / float64(total)
	SLOAvailability.Set(availability)
	SLOErrorRate.Set(float64(errors) / float64(total))

	if len(samples) > 0 {
		sort.Float64s(samples)
		SLOLatencyP95.Set(quantile(samples, 0.95))
		SLOLatencyP99.Set(quantile(samples, 0.99))
	}
}

// quantile returns the q-th quantile of sorted samples using the
// nearest-rank method.
func quantile(sorted []float64, q float64) float64 {
	idx := int(q*float64(len(sorted))+0.5) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
