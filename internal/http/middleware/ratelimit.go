package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/seoscope/seoscope/internal/config"
	"github.com/seoscope/seoscope/internal/observability"
)

// RateLimit creates a middleware that bounds the request rate with a
// token bucket shared across all clients.
func RateLimit(cfg *config.RateLimitConfig) Middleware {
	if cfg == nil || !cfg.Enabled || cfg.RequestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				observability.FromContext(r.Context()).Warn("request rate limited",
					observability.String("path", r.URL.Path),
					observability.String("remote_addr", r.RemoteAddr),
				)
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
