package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics prometheus-метрики сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbPoolOpen      *prometheus.GaugeVec
	dbPoolIdle      *prometheus.GaugeVec
	dbPoolInUse     *prometheus.GaugeVec

	inventoryMutationsTotal *prometheus.CounterVec
	auditEntriesTotal       *prometheus.CounterVec
	auditDroppedTotal       prometheus.Counter
	reconcilerViolations    prometheus.Counter
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"db_service", "operation"}),

		dbQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"db_service", "operation"}),

		dbPoolOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"db_service"}),

		dbPoolIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db_service"}),

		dbPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{"db_service"}),

		inventoryMutationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "inventory_mutations_total",
			Help:        "Total number of slot inventory mutations by operation and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		auditEntriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "audit_entries_total",
			Help:        "Total number of audit log entries by write result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		auditDroppedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "audit_entries_dropped_total",
			Help:        "Audit entries dropped because the queue was full",
			ConstLabels: constLabels,
		}),

		reconcilerViolations: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "inventory_invariant_violations_total",
			Help:        "Slots found outside the 0..total_capacity bounds by the reconciler",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(dbService, operation string, duration time.Duration, err error) {
	m.dbQueryDuration.WithLabelValues(dbService, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(dbService, operation).Inc()
	}
}

// SetDBPoolStats публикует статистику connection pool
func (m *Metrics) SetDBPoolStats(dbService string, open, idle, inUse int) {
	m.dbPoolOpen.WithLabelValues(dbService).Set(float64(open))
	m.dbPoolIdle.WithLabelValues(dbService).Set(float64(idle))
	m.dbPoolInUse.WithLabelValues(dbService).Set(float64(inUse))
}

// ObserveInventoryMutation фиксирует мутацию инвентаря слота
func (m *Metrics) ObserveInventoryMutation(operation, result string) {
	m.inventoryMutationsTotal.WithLabelValues(operation, result).Inc()
}

// ObserveAuditWrite фиксирует результат записи audit-записи
func (m *Metrics) ObserveAuditWrite(result string) {
	m.auditEntriesTotal.WithLabelValues(result).Inc()
}

// ObserveAuditDropped фиксирует потерю audit-записи из-за переполнения очереди
func (m *Metrics) ObserveAuditDropped() {
	m.auditDroppedTotal.Inc()
}

// ObserveInvariantViolation фиксирует слот с нарушенным инвариантом вместимости
func (m *Metrics) ObserveInvariantViolation() {
	m.reconcilerViolations.Inc()
}
