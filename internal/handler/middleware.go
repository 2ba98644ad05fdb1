package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gurusoftware/backend/internal/ratelimit"
	"github.com/gurusoftware/backend/internal/service"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-XSS-Protection", "0")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		// 静的サイトはインラインスタイルを使うため style-src のみ緩める
		h.Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// RateLimit rejects requests over the limiter's budget with 429 and Retry-After.
// Clients are keyed by IP; trustedProxyCount is the number of reverse proxies
// in front of the server that append to X-Forwarded-For.
func RateLimit(limiter ratelimit.Limiter, trustedProxyCount int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trustedProxyCount)
			ok, retryAfter := limiter.Allow(ip)
			if !ok {
				logFromRequest(r).Warn("rate limit exceeded", "client_ip", ip)
				w.Header().Set("Retry-After", retryAfterSeconds(retryAfter))
				writeFailure(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP extracts the real client IP, reading from the rightmost trusted
// proxy position in X-Forwarded-For to prevent spoofing.
func clientIP(r *http.Request, trustedProxyCount int) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		// The rightmost entry added by our infrastructure is at
		// index len(parts) - trustedProxyCount.
		idx := len(parts) - trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// MaxBodySize caps request bodies at n bytes. Handlers see *http.MaxBytesError
// when reading past the limit.
func MaxBodySize(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > n {
				writeFailure(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

// Recoverer turns a handler panic into a 500 JSON response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logFromRequest(r).Error("panic recovered", "panic", v, "path", r.URL.Path)
				writeFailure(w, http.StatusInternalServerError, service.MsgInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// APINotFound answers unrouted /api/ paths with the JSON envelope.
func APINotFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, http.StatusNotFound, msgNotFound)
}
