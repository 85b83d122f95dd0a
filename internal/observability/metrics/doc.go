// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Cache metrics (hits, misses, invalidations, recompute time)
//   - Business metrics (articles, comments, users, image uploads)
//   - Database metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "blog-backend/internal/observability/metrics"
//
//	func rebuildListing() {
//	    start := time.Now()
//	    // ... rebuild listing payload ...
//	    metrics.RecordListRecompute("normal", time.Since(start))
//	}
package metrics
