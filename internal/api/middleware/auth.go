// Package middleware holds router-level HTTP middleware.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/glamtime/SalonBookingService/internal/api/handlers"
)

// UserIDHeader carries the authenticated user identifier. An upstream
// gateway is trusted to have verified it.
const UserIDHeader = "X-User-ID"

type ctxKey struct{}

var userIDKey ctxKey

// Auth requires a valid X-User-ID header and stores the user ID in the
// request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+UserIDHeader+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+UserIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user ID set by Auth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
