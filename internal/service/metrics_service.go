package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/wordup-api/internal/models"
)

const metricsNamespace = "wordup"

// Word write operations counted by RecordWordWrite.
const (
	WordWriteCreate = "create"
	WordWriteBatch  = "batch"
	WordWriteUpdate = "update"
	WordWriteDelete = "delete"
)

// runningTotal accumulates a count and a summed duration for averages in the status report.
type runningTotal struct {
	count atomic.Uint64
	nanos atomic.Uint64
}

func (t *runningTotal) add(d time.Duration) {
	t.count.Add(1)
	t.nanos.Add(uint64(d.Nanoseconds()))
}

func (t *runningTotal) averageMs() (uint64, float64) {
	n := t.count.Load()
	if n == 0 {
		return 0, 0
	}
	return n, float64(t.nanos.Load()) / float64(n) / float64(time.Millisecond)
}

// MetricsService owns the Prometheus registry. A nil *MetricsService is valid and records nothing.
type MetricsService struct {
	handler http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	cacheOpDuration *prometheus.HistogramVec
	dbQueryDuration *prometheus.HistogramVec
	wordWrites      *prometheus.CounterVec

	requests     runningTotal
	dbQueries    runningTotal
	cacheHits    atomic.Uint64
	cacheMiss    atomic.Uint64
	wordsWritten atomic.Uint64
}

// NewMetricsService registers the API collectors plus the Go runtime and process collectors.
func NewMetricsService() *MetricsService {
	m := &MetricsService{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "path", "status"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_lookups_total",
			Help:      "Word cache lookups by result.",
		}, []string{"result"}),
		cacheOpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "cache_operation_seconds",
			Help:      "Latency of cache reads and writes.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "db_query_duration_seconds",
			Help:      "Duration of timed database queries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"query"}),
		wordWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "words_written_total",
			Help:      "Words created, updated or deleted.",
		}, []string{"op"}),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		m.requestDuration,
		m.requestTotal,
		m.cacheLookups,
		m.cacheOpDuration,
		m.dbQueryDuration,
		m.wordWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: metricsNamespace}),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one served request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, code).Inc()
	m.requests.add(duration)
}

// RecordCacheOperation records a cache read and whether it hit.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheOpDuration.WithLabelValues("get").Observe(duration.Seconds())
	if hit {
		m.cacheLookups.WithLabelValues("hit").Inc()
		m.cacheHits.Add(1)
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
	m.cacheMiss.Add(1)
}

// ObserveCacheWrite records a cache write.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheOpDuration.WithLabelValues("set").Observe(duration.Seconds())
}

// ObserveDBQuery records database query timing under label.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
	m.dbQueries.add(duration)
}

// RecordWordWrite counts n words affected by op.
func (m *MetricsService) RecordWordWrite(op string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.wordWrites.WithLabelValues(op).Add(float64(n))
	m.wordsWritten.Add(uint64(n))
}

// Snapshot returns aggregated metrics for the status endpoint.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	hits, misses := m.cacheHits.Load(), m.cacheMiss.Load()
	var ratio float64
	if hits+misses > 0 {
		ratio = float64(hits) / float64(hits+misses)
	}
	requests, avgRequestMs := m.requests.averageMs()
	queries, avgDBMs := m.dbQueries.averageMs()

	return models.SystemMetrics{
		CacheHitRatio:            ratio,
		CacheHits:                hits,
		CacheMisses:              misses,
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		DBQueryCount:             queries,
		AverageDBQueryDurationMs: avgDBMs,
		WordsWritten:             m.wordsWritten.Load(),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
