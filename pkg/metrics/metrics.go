package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "gracechapel", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "gracechapel", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	MessagesReceived = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "gracechapel", Name: "contact_messages_received_total", Help: "Number of contact form submissions accepted."},
	)
	DonationsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "gracechapel", Name: "donations_processed_total", Help: "Number of donation attempts by outcome."},
		[]string{"outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(MessagesReceived)
	reg.MustRegister(DonationsProcessed)
}
