// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generate outcomes recorded in the status label.
const (
	statusOK         = "ok"
	statusBadRequest = "bad_request"
	statusError      = "error"
)

// metrics holds the collectors for the generate endpoint, registered on a
// private registry so tests can build many servers.
//
// Metrics:
//   - bizname_generate_requests_total{status}
//   - bizname_generate_duration_seconds
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bizname",
				Name:      "generate_requests_total",
				Help:      "Total number of generate requests by outcome",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "bizname",
				Name:      "generate_duration_seconds",
				Help:      "Duration of generate requests in seconds, including the provider call",
				Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
			},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observe(status string, start time.Time) {
	m.requests.WithLabelValues(status).Inc()
	m.duration.Observe(time.Since(start).Seconds())
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
