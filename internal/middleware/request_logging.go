package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/actuallystonmai/stylesense-service/internal/metrics"
)

const (
	httpRequestsTotal       = "http_requests_total"
	httpRequestsErrorsTotal = "http_requests_errors_total"
)

// RequestLogger logs every request with logrus and counts it in reg.
// It expects chimw.RequestID to run first.
func RequestLogger(reg *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			labels := map[string]string{
				"method": r.Method,
				"path":   routePattern(r),
				"status": metrics.StatusClass(status),
			}
			reg.Inc(r.Context(), httpRequestsTotal, labels)

			entry := logrus.WithFields(logrus.Fields{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_ip":   r.RemoteAddr,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			})
			if status >= 500 {
				reg.Inc(r.Context(), httpRequestsErrorsTotal, labels)
				entry.Error("http request failed")
				return
			}
			entry.Info("http request served")
		})
	}
}

// routePattern keeps metric labels bounded by using the matched chi route
// instead of the raw path.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
