package lava

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Palymer/api-lava-ru/internal/types"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lava_client",
			Name:      "requests_total",
			Help:      "API requests issued, by endpoint.",
		},
		[]string{"endpoint"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lava_client",
			Name:      "request_failures_total",
			Help:      "API requests that returned an error, by endpoint and failure kind.",
		},
		[]string{"endpoint", "kind"},
	)
)

// observe records the outcome of one request.
func observe(endpoint string, err error) {
	requestsTotal.WithLabelValues(endpoint).Inc()
	if err == nil {
		return
	}
	kind := string(types.ErrorKindLocal)
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		kind = string(apiErr.Kind)
	}
	requestFailuresTotal.WithLabelValues(endpoint, kind).Inc()
}
