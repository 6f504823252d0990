package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taskdeck_requests_total",
		Help: "Total number of HTTP requests handled, by route and status.",
	}, []string{"method", "route", "status"})

	errorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taskdeck_errors_total",
		Help: "Total number of HTTP requests that ended in a 5xx status.",
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(requestCounter, errorCounter)
}

// metricsAndLog counts every request by chi route pattern and logs it
// through zerolog.
func metricsAndLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		status := ww.Status()

		requestCounter.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		if status >= http.StatusInternalServerError {
			errorCounter.WithLabelValues(r.Method, route).Inc()
		}

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Request handled")
	})
}
