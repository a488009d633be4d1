package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/nutrition-tracker/internal/metrics"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RequestLogger logs every request and records its duration in the
// request histogram, labelled by route pattern.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			route := routePattern(r)
			metrics.HTTPRequestDuration.
				WithLabelValues(r.Method, route, strconv.Itoa(sw.statusCode)).
				Observe(duration.Seconds())

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("route", route),
				zap.Int("status", sw.statusCode),
				zap.Duration("duration", duration),
			}
			switch {
			case sw.statusCode >= http.StatusInternalServerError:
				logger.Error("request failed", fields...)
			case sw.statusCode >= http.StatusBadRequest:
				logger.Warn("request rejected", fields...)
			default:
				logger.Info("request served", fields...)
			}
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
