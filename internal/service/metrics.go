package service

import (
	"errors"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var orderOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sms_order_service",
	Subsystem: "orders",
	Name:      "operations_total",
	Help:      "Total number of order lifecycle operations by result.",
}, []string{"operation", "result"})

func observe(operation string, err error) {
	orderOperationsTotal.WithLabelValues(operation, operationResult(err)).Inc()
}

func operationResult(err error) string {
	var providerErr *entities.ProviderError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrProviderUnavailable):
		return "unavailable"
	case errors.As(err, &providerErr):
		return "rejected"
	case errors.Is(err, entities.ErrInvalidService),
		errors.Is(err, entities.ErrInvalidCountry),
		errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrOrderFinalized):
		return "invalid"
	default:
		return "error"
	}
}
