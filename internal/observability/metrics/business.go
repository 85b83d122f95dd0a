package metrics

import "time"

// RecordCacheHit records a cache read that returned a live entry.
func RecordCacheHit(key string) {
	CacheHitsTotal.WithLabelValues(key).Inc()
}

// RecordCacheMiss records a cache read that fell through to recomputation.
// Store errors count as misses because the caller recomputes either way.
func RecordCacheMiss(key string) {
	CacheMissesTotal.WithLabelValues(key).Inc()
}

// RecordCacheInvalidation records a write-path invalidation of the cached views.
func RecordCacheInvalidation() {
	CacheInvalidationsTotal.Inc()
}

// RecordListRecompute records how long a listing rebuild took.
// Mode is "normal" or "diagnostic".
func RecordListRecompute(mode string, duration time.Duration) {
	ListRecomputeDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordImageUpload records the result of an image upload attempt.
func RecordImageUpload(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	ImagesUploadedTotal.WithLabelValues(result).Inc()
}

// UpdateArticlesTotal updates the article count gauge.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// UpdateCommentsTotal updates the comment count gauge.
func UpdateCommentsTotal(count int64) {
	CommentsTotal.Set(float64(count))
}

// UpdateUsersTotal updates the user count gauge.
func UpdateUsersTotal(count int64) {
	UsersTotal.Set(float64(count))
}
