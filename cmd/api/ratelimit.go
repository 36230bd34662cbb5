package main

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

// rateLimit rejects requests with 429 once the token bucket is empty
func rateLimit(limiter *rate.Limiter, logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.Warn("rate limit exceeded",
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
			)
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
