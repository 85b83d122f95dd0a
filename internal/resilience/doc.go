// Package resilience provides reliability and fault tolerance patterns for the application.
// It currently holds the retry logic with exponential backoff and jitter used when
// establishing the database connection at startup.
//
// Usage Example:
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience
