package handler

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Summaries       *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ytsum_http_requests_total",
				Help: "HTTP requests served, by route and status code.",
			},
			[]string{"route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ytsum_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by route.",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30, 45, 60},
			},
			[]string{"route"},
		),
		Summaries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ytsum_summaries_total",
				Help: "Summaries returned, by mode and by whether summary and timeline were generated or fallback content.",
			},
			[]string{"mode", "summary", "timeline"},
		),
	}
	reg.MustRegister(m.Requests, m.RequestDuration, m.Summaries)

	return m
}

func (m *Metrics) observeRequest(route string, status int, seconds float64) {
	m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(seconds)
}
