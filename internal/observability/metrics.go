package observability

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

const defaultScrapeInterval = 15 * time.Second

type Metrics struct {
	apiRequests *CounterVec
	apiLatency  *HistogramVec
	apiInflight *Gauge
	apiReqTotal *Counter
	apiReqError *Counter

	aggregateOps       *CounterVec
	aggregateLatency   *HistogramVec
	aggregateConflicts *CounterVec
	aggregateFailures  *Counter

	dbStats *GaugeVec
}

// New builds an empty metrics registry.
func New() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("records_api_requests_total", "Total API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"records_api_request_duration_seconds",
			"API request latency in seconds by method/route/status.",
			[]string{"method", "route", "status"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight: NewGauge("records_api_inflight_requests", "In-flight API requests."),
		apiReqTotal: NewCounter("records_api_requests_total_all", "Total API requests (all)."),
		apiReqError: NewCounter("records_api_requests_error_total", "Total API requests with 5xx status."),
		aggregateOps: NewCounterVec(
			"records_aggregate_operations_total",
			"Aggregate operations by operation/status.",
			[]string{"operation", "status"},
		),
		aggregateLatency: NewHistogramVec(
			"records_aggregate_operation_duration_seconds",
			"Aggregate operation duration in seconds by operation/status.",
			[]string{"operation", "status"},
			[]float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		),
		aggregateConflicts: NewCounterVec("records_aggregate_conflicts_total", "Aggregate conflicts by operation.", []string{"operation"}),
		aggregateFailures:  NewCounter("records_aggregate_internal_errors_total", "Aggregate operations that ended with an internal error."),
		dbStats:            NewGaugeVec("records_db_pool_stats", "Database connection pool stats.", []string{"metric"}),
	}
}

// Init returns a registry when enabled and nil otherwise. Every method is
// safe on a nil *Metrics.
func Init(log *logger.Logger, enabled bool) *Metrics {
	if !enabled {
		return nil
	}
	if log != nil {
		log.Info("Observability metrics enabled")
	}
	return New()
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.apiReqTotal,
		m.apiReqError,
		m.aggregateOps,
		m.aggregateLatency,
		m.aggregateConflicts,
		m.aggregateFailures,
		m.dbStats,
	}
	for _, mw := range writers {
		if err := mw.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.Inc(method, route, status)
	m.apiLatency.Observe(dur.Seconds(), method, route, status)
	m.apiReqTotal.Inc()
	if isServerErrorStatus(status) {
		m.apiReqError.Inc()
	}
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveAggregateOperation(name, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if name == "" {
		name = "unknown"
	}
	if status == "" {
		status = "unknown"
	}
	m.aggregateOps.Inc(name, status)
	m.aggregateLatency.Observe(dur.Seconds(), name, status)
	if isFailureStatus(status) {
		m.aggregateFailures.Inc()
	}
}

func (m *Metrics) IncAggregateConflict(name string) {
	if m == nil {
		return
	}
	if name == "" {
		name = "unknown"
	}
	m.aggregateConflicts.Inc(name)
}

// RunDBCollector samples connection pool stats until ctx is done.
func (m *Metrics) RunDBCollector(ctx context.Context, log *logger.Logger, db *gorm.DB, interval time.Duration) error {
	if m == nil || db == nil {
		return nil
	}
	if interval <= 0 {
		interval = defaultScrapeInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := m.CollectDBStats(db); err != nil && log != nil {
				log.Warn("metrics: db stats unavailable", "error", err)
			}
		}
	}
}

// CollectDBStats takes one sample of the pool stats.
func (m *Metrics) CollectDBStats(db *gorm.DB) error {
	if m == nil || db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	stats := sqlDB.Stats()
	m.dbStats.Set(float64(stats.OpenConnections), "open_connections")
	m.dbStats.Set(float64(stats.InUse), "in_use")
	m.dbStats.Set(float64(stats.Idle), "idle")
	m.dbStats.Set(float64(stats.WaitCount), "wait_count")
	m.dbStats.Set(stats.WaitDuration.Seconds(), "wait_duration_seconds")
	m.dbStats.Set(float64(stats.MaxOpenConnections), "max_open_connections")
	m.dbStats.Set(float64(stats.MaxIdleClosed), "max_idle_closed")
	m.dbStats.Set(float64(stats.MaxLifetimeClosed), "max_lifetime_closed")
	return nil
}

func isServerErrorStatus(status string) bool {
	status = strings.TrimSpace(status)
	if len(status) < 3 {
		return false
	}
	return status[0] == '5'
}

func isFailureStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "internal", "failure":
		return true
	default:
		return false
	}
}
