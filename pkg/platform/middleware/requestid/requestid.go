// Package requestid copies chi's request ID into requestcontext so code that
// does not import chi can log it.
package requestid

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"lastproject/pkg/requestcontext"
)

// Header is echoed back so clients can correlate log lines.
const Header = "X-Request-Id"

// Middleware must run after chi's middleware.RequestID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chimw.GetReqID(r.Context())
		if id != "" {
			w.Header().Set(Header, id)
		}
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), id)))
	})
}
