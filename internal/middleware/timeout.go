package middleware

import (
	"context"
	"net/http"
	"time"
)

// TimeoutMiddleware caps each request's context lifetime. Handlers that
// honor the context stop shortly after the deadline passes.
func TimeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
