package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ClientRequestsTotal counts outgoing Call2FA API requests by step and status.
	// Transport failures are recorded with status "error".
	ClientRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "call2fa_client_requests_total",
			Help: "Total number of requests sent to the Call2FA API",
		},
		[]string{"step", "status"},
	)
	ClientRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "call2fa_client_request_duration_seconds",
			Help:    "Call2FA API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
)

// Init registers every collector with reg, or the default registerer when reg is nil.
func Init(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(ClientRequestsTotal)
	reg.MustRegister(ClientRequestDuration)
	reg.MustRegister(HTTPRequestsTotal)
	reg.MustRegister(HTTPRequestDuration)
}
