// Package metrics holds the Prometheus collectors for provider calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "twilio_bridge",
			Name:      "messages_sent_total",
			Help:      "Outbound messages handed to Twilio, by outcome.",
		},
		[]string{"outcome"}, // accepted, rejected, error
	)

	Lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "twilio_bridge",
			Name:      "lookups_total",
			Help:      "Carrier lookups, by outcome.",
		},
		[]string{"outcome"}, // cache_hit, found, not_found, error
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "twilio_bridge",
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of HTTP requests to Twilio.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	InboundMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "twilio_bridge",
			Name:      "inbound_messages_total",
			Help:      "Inbound message webhooks answered.",
		},
	)
)
