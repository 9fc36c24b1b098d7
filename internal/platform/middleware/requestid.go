package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"sscs-bulk-scan/pkg/requestcontext"
)

// RequestID tags every request with an id and a request-scoped timestamp.
// An inbound X-Request-ID is honored so callback chains stay traceable
// across services.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
