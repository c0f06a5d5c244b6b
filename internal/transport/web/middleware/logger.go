package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"books_scraper/utils"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logger puts a request ID into the context and logs every request the
// way the rest of the app logs: JSON with op and rqID fields.
func Logger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := utils.CreateCtxWithRqID(r.Context())
			rqID := utils.GetRequestIDFromCtx(ctx)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			slog.Info(
				"request handled",
				slog.String("rqID", rqID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
