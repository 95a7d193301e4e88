package carapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "car_gateway_requests_total",
			Help: "Requests sent to the car service, by operation and response code.",
		},
		[]string{"operation", "code"},
	)

	upstreamLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "car_gateway_logins_total",
			Help: "Login exchanges with the admin gateway, by result.",
		},
		[]string{"result"},
	)
)
