package provider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sms_order_service",
		Subsystem: "provider",
		Name:      "requests_total",
		Help:      "Total number of requests to the SMS provider.",
	}, []string{"action", "outcome"})

	providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sms_order_service",
		Subsystem: "provider",
		Name:      "request_duration_seconds",
		Help:      "SMS provider request latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})
)
