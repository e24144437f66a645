// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus instrumentation for the HTTP layer and the
database connection pool.

Collected series:

  - http_requests_total{method,route,status}
  - http_request_duration_seconds{method,route}
  - http_inflight_requests{method}
  - go_sql_* pool statistics (when a database is registered)

Routes are labelled by their chi pattern (e.g. /api/groups/{id}) so identifiers
never explode label cardinality.
*/
package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/grouproster/internal/platform/middleware"
)

// unmatchedRoute labels requests that no route pattern matched.
const unmatchedRoute = "unmatched"

// Recorder owns a registry and the HTTP collectors registered on it.
type Recorder struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inflight        *prometheus.GaugeVec
}

// NewRecorder builds a [Recorder] on a fresh registry, including the Go runtime
// and process collectors.
func NewRecorder() (*Recorder, error) {
	recorder := &Recorder{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "HTTP requests currently being served.",
		}, []string{"method"}),
	}

	for _, collector := range []prometheus.Collector{
		recorder.requestsTotal,
		recorder.requestDuration,
		recorder.inflight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := recorder.register(collector); err != nil {
			return nil, err
		}
	}

	return recorder, nil
}

// RegisterDB exports connection pool statistics for db under the given name.
func (recorder *Recorder) RegisterDB(db *sql.DB, name string) error {
	return recorder.register(collectors.NewDBStatsCollector(db, name))
}

// register adds collector, ignoring duplicates.
func (recorder *Recorder) register(collector prometheus.Collector) error {
	err := recorder.registry.Register(collector)

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}

// Handler serves the exposition format for the recorder's registry.
func (recorder *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(recorder.registry, promhttp.HandlerOpts{})
}

// Middleware instruments requests with counters, latency and in-flight gauges.
func (recorder *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		method := strings.ToUpper(request.Method)

		inflight := recorder.inflight.WithLabelValues(method)
		inflight.Inc()
		defer inflight.Dec()

		startTime := time.Now()
		wrappedWriter := middleware.NewStatusRecorder(writer)

		next.ServeHTTP(wrappedWriter, request)

		route := routePattern(request)
		recorder.requestDuration.WithLabelValues(method, route).Observe(time.Since(startTime).Seconds())
		recorder.requestsTotal.WithLabelValues(method, route, strconv.Itoa(wrappedWriter.Status)).Inc()
	})
}

// routePattern returns the matched chi pattern once routing has completed.
func routePattern(request *http.Request) string {
	routeContext := chi.RouteContext(request.Context())
	if routeContext == nil {
		return unmatchedRoute
	}

	pattern := routeContext.RoutePattern()
	if pattern == "" {
		return unmatchedRoute
	}
	return pattern
}
