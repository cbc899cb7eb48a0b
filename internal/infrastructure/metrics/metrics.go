package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados de una generación de reporte.
const (
	OutcomeOK     = "ok"
	OutcomeNoData = "no_data"
	OutcomeError  = "error"
)

// Metrics instrumentos del portal. Se registran en el Registerer que se pase
// a New, de modo que las pruebas pueden usar un registro propio.
type Metrics struct {
	ReportsTotal   *prometheus.CounterVec
	ReportDuration *prometheus.HistogramVec
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
}

// New crea los instrumentos y los registra en r (nil = no registrar).
func New(r prometheus.Registerer) *Metrics {
	m := &Metrics{
		ReportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_reports_total",
				Help: "PDF reports by kind and outcome",
			},
			[]string{"kind", "outcome"}, // customer|list , ok|no_data|error
		),
		ReportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_report_duration_seconds",
				Help:    "Time spent fetching and rendering a report",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	if r != nil {
		r.MustRegister(m.ReportsTotal, m.ReportDuration, m.HTTPRequests, m.HTTPDuration)
	}
	return m
}

// ObserveReport registra una generación de reporte.
func (m *Metrics) ObserveReport(kind, outcome string, d time.Duration) {
	m.ReportsTotal.WithLabelValues(kind, outcome).Inc()
	m.ReportDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveHTTP registra una petición atendida.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
