// Package ratelimit throttles public form submissions per client key.
package ratelimit

import "time"

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	// Allow reports whether key is within quota and, when it is not, how
	// long the caller should wait before retrying.
	Allow(key string) (ok bool, retryAfter time.Duration)
}
