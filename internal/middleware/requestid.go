package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID attaches an X-Request-ID to the request and response, generating
// one when the client did not send it. Used to correlate operator logs with
// individual requests.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)

		next.ServeHTTP(w, r)
	})
}
