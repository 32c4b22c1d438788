package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "soupfinance_client",
			Name:      "requests_total",
			Help:      "Backend requests that produced a response, by method.",
		},
		[]string{"method"},
	)

	unauthorizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "soupfinance_client",
			Name:      "unauthorized_total",
			Help:      "401 responses that triggered a credential clear.",
		},
	)

	csrfFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "soupfinance_client",
			Name:      "csrf_token_fetches_total",
			Help:      "Synchronizer-token fetches, by outcome.",
		},
		[]string{"outcome"},
	)
)
