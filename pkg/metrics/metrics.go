package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Booking request outcomes
const (
	ResultCreated         = "created"
	ResultSlotUnavailable = "slot_unavailable"
	ResultInvalid         = "invalid"
	ResultError           = "error"
)

// Metrics содержит HTTP и доменные метрики сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	bookingRequests   *prometheus.CounterVec
	bookingDecisions  *prometheus.CounterVec
	bookingsCompleted prometheus.Counter
	resolutions       *prometheus.CounterVec
}

// New создает метрики и регистрирует их в стандартном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном регистре (для тестов и отключенных метрик)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "lab_booking",
				Name:        "http_requests_total",
				Help:        "Count of HTTP requests by method, route and status code.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   "lab_booking",
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency by method and route.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		bookingRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "lab_booking",
				Name:        "booking_requests_total",
				Help:        "Count of booking requests by result.",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		bookingDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "lab_booking",
				Name:        "booking_decisions_total",
				Help:        "Count of supervisor decisions over bookings.",
				ConstLabels: constLabels,
			},
			[]string{"decision"},
		),
		bookingsCompleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   "lab_booking",
				Name:        "bookings_completed_total",
				Help:        "Count of approved bookings moved to completed.",
				ConstLabels: constLabels,
			},
		),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "lab_booking",
				Name:        "slot_resolutions_total",
				Help:        "Count of resolved slots by availability status.",
				ConstLabels: constLabels,
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.bookingRequests,
		m.bookingDecisions,
		m.bookingsCompleted,
		m.resolutions,
	)

	return m
}

// ObserveHTTP записывает результат HTTP запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncBookingRequest(result string) {
	m.bookingRequests.WithLabelValues(result).Inc()
}

func (m *Metrics) IncDecision(decision string) {
	m.bookingDecisions.WithLabelValues(decision).Inc()
}

func (m *Metrics) AddCompleted(n int) {
	if n > 0 {
		m.bookingsCompleted.Add(float64(n))
	}
}

func (m *Metrics) IncResolution(status string) {
	m.resolutions.WithLabelValues(status).Inc()
}
