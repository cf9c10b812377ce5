package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// contextKey is the private type for context values set by this package.
type contextKey string

// AdminTokenHeader carries the operator token for diagnostic endpoints.
const AdminTokenHeader = "X-Admin-Token"

// AdminToken guards operator-only endpoints behind a shared token.
// An empty configured token disables the guarded endpoints entirely
// (404, so their existence is not advertised). A wrong token gets 401.
func AdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				respondJSONError(w, http.StatusNotFound, "not_found", "The requested resource was not found")
				return
			}

			presented := r.Header.Get(AdminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				GetLogger(r.Context()).Warn("admin token rejected", "path", r.URL.Path)
				respondJSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// respondJSONError writes a minimal JSON error envelope. Self-contained
// to avoid a circular import (handler imports middleware for GetLogger).
func respondJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
