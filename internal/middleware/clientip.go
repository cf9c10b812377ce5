package middleware

import (
	"context"
	"net/http"
)

const clientIPKey contextKey = "client_ip"

// WithClientIP resolves the client IP once, early in the chain, so the
// rate limiter and handlers all see the same address. Proxy headers can
// be spoofed when the app is reachable directly, so deploy behind a
// proxy that sets them.
func WithClientIP() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), clientIPKey, GetClientIP(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientIPFromContext returns the resolved client IP, or "" when
// WithClientIP is not in the chain.
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return ""
}

// clientIPKeyFunc keys rate limiting on the resolved client IP, falling
// back to extracting it from the request directly.
func clientIPKeyFunc(r *http.Request) string {
	if ip := GetClientIPFromContext(r.Context()); ip != "" {
		return ip
	}
	return GetClientIP(r)
}
