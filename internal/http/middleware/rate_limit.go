package middleware

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pulkitchauhan42/TGP/internal/http/response"
	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

// Counter increments key within a fixed window and returns the new count.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type RateLimitConfig struct {
	Requests   int // max requests per window
	Window     time.Duration
	Prefix     string // namespaces the counter keys
	// TrustProxy keys clients by X-Forwarded-For / X-Real-IP. Enable only
	// behind a proxy that overwrites those headers; otherwise clients can
	// pick their own key.
	TrustProxy bool
}

type RateLimiter struct {
	counter Counter
	config  RateLimitConfig
}

func NewRateLimiter(counter Counter, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{counter: counter, config: config}
}

// Middleware limits requests per client IP. Counter errors fail open.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.config.Requests <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			sum := sha256.Sum256([]byte(clientIP(r, rl.config.TrustProxy)))
			key := fmt.Sprintf("ratelimit:%s:%x", rl.config.Prefix, sum)

			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			count, err := rl.counter.Incr(ctx, key, rl.config.Window)
			cancel()
			if err != nil {
				logger.WarnContext(r.Context(), "rate limit check failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if count > int64(rl.config.Requests) {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(rl.config.Window.Seconds())))
				response.RateLimit(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if !trustProxy {
		return remoteHost(r)
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return remoteHost(r)
}

func remoteHost(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
