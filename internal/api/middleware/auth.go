package middleware

import (
	"net/http"

	"github.com/chris030500/Barberia/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

const msgMissingUserID = "falta el encabezado X-User-ID"

// Auth requires the X-User-ID header on mutating routes. Identity comes from
// the gateway in front of this service; here only its presence is enforced.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(userIDHeader) == "" {
			handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: msgMissingUserID})
			return
		}
		next.ServeHTTP(w, r)
	})
}
