package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики и гистограммы Prometheus для шлюза предсказаний
type Metrics struct {
	SubmissionsTotal     *prometheus.CounterVec   // labels: outcome={success,error,rejected,dropped}
	ValidationRejections *prometheus.CounterVec   // labels: reason={missing_field,invalid_type,out_of_range}
	BackendDuration      *prometheus.HistogramVec // labels: endpoint={health,info,models,predict}
	SubmissionsInFlight  prometheus.Gauge
	NotificationsPushed  prometheus.Counter
}

// NewMetrics создает метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.SubmissionsTotal,
		m.ValidationRejections,
		m.BackendDuration,
		m.SubmissionsInFlight,
		m.NotificationsPushed,
	)

	return m
}

// NewMetricsForTesting создает метрики без регистрации в общем реестре,
// чтобы избежать паники "already registered" при запуске из нескольких тестов
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_gateway",
			Name:      "submissions_total",
			Help:      "Prediction submissions by outcome.",
		}, []string{"outcome"}),
		ValidationRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_gateway",
			Name:      "validation_rejections_total",
			Help:      "Client-side validation failures by reason.",
		}, []string{"reason"}),
		BackendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flood_gateway",
			Name:      "backend_request_duration_seconds",
			Help:      "Prediction backend request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		SubmissionsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flood_gateway",
			Name:      "submissions_in_flight",
			Help:      "1 while a prediction submission is in flight, 0 otherwise.",
		}),
		NotificationsPushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_gateway",
			Name:      "notifications_pushed_total",
			Help:      "Error notifications shown to the user.",
		}),
	}
}
