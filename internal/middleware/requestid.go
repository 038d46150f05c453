package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions. It is the
// canonical form of chi's middleware.RequestIDHeader.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id through chi's middleware.RequestID,
// so chi's request logger prints it. Requests without an X-Request-ID get a
// UUID. The id is echoed on the response.
func RequestID(next http.Handler) http.Handler {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(RequestIDHeader, middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r)
	})
	tagged := middleware.RequestID(echo)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(middleware.RequestIDHeader) == "" {
			r = r.Clone(r.Context())
			r.Header.Set(middleware.RequestIDHeader, uuid.NewString())
		}
		tagged.ServeHTTP(w, r)
	})
}

// RequestIDFromContext returns the id set by RequestID, or "" outside it.
func RequestIDFromContext(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}
