package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"tallybook/internal/modkit/scope"
	"tallybook/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
// compose with extra per-module middleware as needed in main
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: time.Second}),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(30 * time.Second),
	}
}

// SourceTag stamps every request context with the slip entry source so
// downstream writers know where a submission came from
func SourceTag(src string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(scope.WithSource(r.Context(), src)))
		})
	}
}
