package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/sms-order-service/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Все ответы API идут с кодом 200, поэтому неуспешные ответы считаются отдельно
var apiFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "sms_order_service",
		Subsystem: "api",
		Name:      "failures_total",
		Help:      "Total number of API responses with success=false",
	},
	[]string{"route"},
)

func RegisterMetrics() {
	prometheus.MustRegister(apiFailures)
}

func observeFailure(r *http.Request) {
	apiFailures.WithLabelValues(middleware.RoutePattern(r)).Inc()
}
