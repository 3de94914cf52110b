package providers

import (
	"aquad/internal/models"
	"aquad/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StateReader is the read-only slice of the hydration store the gauges
// consume. Declared here so providers never import the services package.
type StateReader interface {
	State() *models.HydrationState
}

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncActionsTotal(action string)
	ObservePersistenceDuration(duration time.Duration)
	AddRemindersScheduled(count int)
	IncBatchCancellations()
	IncRemindersDelivered()
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	actionsTotal        *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
	remindersScheduled  prometheus.Counter
	batchCancellations  prometheus.Counter
	remindersDelivered  prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncActionsTotal(action string) {
	m.actionsTotal.WithLabelValues(action).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) AddRemindersScheduled(count int) {
	m.remindersScheduled.Add(float64(count))
}

func (m *MetricsProvider) IncBatchCancellations() {
	m.batchCancellations.Inc()
}

func (m *MetricsProvider) IncRemindersDelivered() {
	m.remindersDelivered.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, service StateReader) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aquad_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aquad_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aquad_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aquad_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		actionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aquad_actions_total",
			Help: "Total number of dispatched actions",
		}, []string{"action"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "aquad_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		remindersScheduled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aquad_reminders_scheduled_total",
			Help: "Total number of reminder firings handed to the sink",
		}),

		batchCancellations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aquad_reminder_batch_cancellations_total",
			Help: "Total number of cancel-all operations against the sink",
		}),

		remindersDelivered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aquad_reminders_delivered_total",
			Help: "Total number of reminder firings delivered locally",
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "aquad_current_intake_ml",
		Help: "Current intake for today in milliliters",
	}, func() float64 {
		return float64(service.State().CurrentIntake)
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "aquad_daily_goal_ml",
		Help: "Configured daily goal in milliliters",
	}, func() float64 {
		return float64(service.State().DailyGoal)
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "aquad_streak_days",
		Help: "Current streak of consecutive goal days",
	}, func() float64 {
		return float64(service.State().StreakCount)
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncActionsTotal(_ string)                         {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) AddRemindersScheduled(_ int)                      {}
func (n *noopMetrics) IncBatchCancellations()                           {}
func (n *noopMetrics) IncRemindersDelivered()                           {}
