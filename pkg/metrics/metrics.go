package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// Регистрируется в дефолтном registry, отдается через promhttp в cmd/main.go
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	fetchFailuresTotal *prometheus.CounterVec
	cacheHitsTotal     prometheus.Counter
	cacheMissesTotal   prometheus.Counter
	malformedEvents    prometheus.Counter
}

// New создает и регистрирует метрики сервиса
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

		fetchFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "timetable_fetch_failures_total",
			Help:        "Total number of failed room schedule fetches",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		cacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_cache_hits_total",
			Help:        "Total number of schedule cache hits",
			ConstLabels: constLabels,
		}),

		cacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_cache_misses_total",
			Help:        "Total number of schedule cache misses",
			ConstLabels: constLabels,
		}),

		malformedEvents: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "timetable_malformed_events_total",
			Help:        "Total number of malformed event records skipped during conflict checks",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncFetchFailure фиксирует неудачный запрос расписания комнаты
// reason: "status", "transport", "decode"
func (m *Metrics) IncFetchFailure(reason string) {
	m.fetchFailuresTotal.WithLabelValues(reason).Inc()
}

// IncCacheHit фиксирует попадание в кеш расписаний
func (m *Metrics) IncCacheHit() {
	m.cacheHitsTotal.Inc()
}

// IncCacheMiss фиксирует промах кеша расписаний
func (m *Metrics) IncCacheMiss() {
	m.cacheMissesTotal.Inc()
}

// IncMalformedEvent фиксирует пропущенную некорректную запись события
func (m *Metrics) IncMalformedEvent() {
	m.malformedEvents.Inc()
}
